package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("User", "email", "invalid format", cause)

		assert.Contains(t, err.Error(), "prisma: schema error")
		assert.Contains(t, err.Error(), "type User")
		assert.Contains(t, err.Error(), "field email")
		assert.Contains(t, err.Error(), "invalid format")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with type only", func(t *testing.T) {
		err := &SchemaError{Type: "User"}
		assert.Contains(t, err.Error(), "type User")
		assert.NotContains(t, err.Error(), "field")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		err := NewSchemaError("User", "blob", "", ErrUnsupportedType)

		assert.Equal(t, ErrUnsupportedType, err.Unwrap())
		assert.True(t, errors.Is(err, ErrUnsupportedType))
		assert.True(t, errors.Is(err, ErrInvalidSchema))
		assert.False(t, errors.Is(err, ErrDuplicateTag))
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		err := fmt.Errorf("synthesize: %w", NewSchemaError("User", "email", "test", nil))
		assert.True(t, IsSchemaError(err))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "must be positive")

		assert.Contains(t, err.Error(), "prisma: config error")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Output", nil, "missing")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestRelationError(t *testing.T) {
	err := &RelationError{From: "User", To: "Ghost", Field: "friend"}
	assert.Equal(t, "prisma: relation error on field friend (User -> Ghost): unknown entity", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidRelation))
	assert.True(t, IsRelationError(fmt.Errorf("wrap: %w", err)))
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewGenerationError("write", "db/client.go", "create file", cause)

		assert.Equal(t, "prisma: generation error in phase write (file: db/client.go): create file: disk full", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("Is matches ErrGenerationFailed", func(t *testing.T) {
		err := NewGenerationError("format", "", "", nil)
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsGenerationError(err))
		assert.False(t, IsGenerationError(ErrInvalidSchema))
	})
}
