package gen

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmitter struct {
	name string
	emit func(*Graph) (*jen.File, error)
}

func (e stubEmitter) Name() string { return e.name }

func (e stubEmitter) Emit(g *Graph) (*jen.File, error) { return e.emit(g) }

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("prisma-client-go")(c)

		require.NoError(t, err)
		assert.Equal(t, "prisma-client-go", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"simple", "db", false},
		{"underscore", "prisma_db", false},
		{"empty", "", true},
		{"path", "internal/db", true},
		{"leading digit", "1db", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithPackage(tt.pkg)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				assert.Empty(t, c.Package)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.pkg, c.Package)
			}
		})
	}
}

func TestWithOutput(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithOutput("db/client.go")(c))
	assert.Equal(t, "db/client.go", c.Output)

	err := WithOutput("")(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.workers())

	require.NoError(t, WithWorkers(0)(c))
	assert.Positive(t, c.workers(), "zero falls back to GOMAXPROCS")

	err := WithWorkers(-1)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestWithRuntimePackage(t *testing.T) {
	c := &Config{}
	assert.Equal(t, DefaultRuntimePath, c.Runtime())
	require.NoError(t, WithRuntimePackage("example.com/rt")(c))
	assert.Equal(t, "example.com/rt", c.Runtime())
	assert.Error(t, WithRuntimePackage("")(c))
}

func TestWithFormat(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithFormat(false)(c))
	assert.True(t, c.DisableFormat)
	require.NoError(t, WithFormat(true)(c))
	assert.False(t, c.DisableFormat)
}

func TestWithEmitter(t *testing.T) {
	c := &Config{}
	e := stubEmitter{name: "stub"}
	require.NoError(t, WithEmitter(e)(c))
	assert.Equal(t, "stub", c.Emitter.Name())

	err := WithEmitter(nil)(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestOptionsFromMap(t *testing.T) {
	t.Run("known keys", func(t *testing.T) {
		opts, err := OptionsFromMap(map[string]string{
			"package":      "models",
			"disableGofmt": "true",
			"workers":      "3",
			"provider":     "prisma-client-go",
		})
		require.NoError(t, err)
		c, err := NewConfig(opts...)
		require.NoError(t, err)
		assert.Equal(t, "models", c.Package)
		assert.True(t, c.DisableFormat)
		assert.Equal(t, 3, c.Workers)
	})

	t.Run("invalid values are collected", func(t *testing.T) {
		_, err := OptionsFromMap(map[string]string{
			"disableGofmt": "maybe",
			"workers":      "many",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disableGofmt")
		assert.Contains(t, err.Error(), "workers")
	})

	t.Run("invalid package fails on apply", func(t *testing.T) {
		opts, err := OptionsFromMap(map[string]string{"package": "a-b"})
		require.NoError(t, err)
		_, err = NewConfig(opts...)
		assert.True(t, IsConfigError(err))
	})
}

func TestApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(
		WithPackage(""),
		WithWorkers(2),
		WithOutput(""),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Package")
	assert.Contains(t, err.Error(), "Output")
	assert.Equal(t, 2, c.Workers, "valid options are still applied")
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(WithPackage("db"), WithOutput("db/db_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "db", c.Package)

	_, err = NewConfig(WithPackage(""))
	assert.Error(t, err)

	assert.Panics(t, func() { MustNewConfig(WithWorkers(-1)) })
	assert.NotPanics(t, func() { MustNewConfig() })
}
