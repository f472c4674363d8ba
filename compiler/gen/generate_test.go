package gen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// namesEmitter declares one constant per entity.
func namesEmitter() Emitter {
	return stubEmitter{name: "names", emit: func(g *Graph) (*jen.File, error) {
		f := g.NewFile()
		for _, n := range g.Nodes {
			f.Const().Id(n.ActionsVar() + "Name").Op("=").Lit(n.Name)
		}
		return f, nil
	}}
}

func TestGenerate(t *testing.T) {
	t.Run("writes output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "nested", "db", "db_gen.go")
		err := Generate(context.Background(), fixture(), WithOutput(out), WithEmitter(namesEmitter()))
		require.NoError(t, err)

		src, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(src), "// Code generated by Prisma Client Go. DO NOT EDIT.")
		assert.Contains(t, string(src), "package db")
		assert.Contains(t, string(src), `const UserName = "User"`)
		assert.Contains(t, string(src), `const MembershipName = "Membership"`)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "client.go")
		require.NoError(t, os.WriteFile(out, []byte("stale content that is much longer than the output"), 0o644))
		err := Generate(context.Background(), fixture(),
			WithOutput(out), WithPackage("client"), WithEmitter(namesEmitter()), WithFormat(false))
		require.NoError(t, err)

		src, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotContains(t, string(src), "stale")
		assert.Contains(t, string(src), "package client")
	})

	t.Run("logs the run", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		c := MustNewConfig(WithOutput(filepath.Join(t.TempDir(), "db", "db_gen.go")), WithEmitter(namesEmitter()))
		require.NoError(t, NewGenerator(c, log).Generate(context.Background(), fixture()))
		assert.Contains(t, buf.String(), "synthesized graph")
		assert.Contains(t, buf.String(), "entities=3")
		assert.Contains(t, buf.String(), "generated client")
		assert.Contains(t, buf.String(), "package=db")
	})
}

func TestGenerateErrors(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("boom")
	failing := stubEmitter{name: "failing", emit: func(*Graph) (*jen.File, error) { return nil, cause }}
	broken := stubEmitter{name: "broken", emit: func(g *Graph) (*jen.File, error) {
		f := g.NewFile()
		f.Id("func (")
		return f, nil
	}}

	t.Run("missing emitter", func(t *testing.T) {
		err := Generate(ctx, fixture(), WithOutput(filepath.Join(t.TempDir(), "a.go")))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("missing output", func(t *testing.T) {
		err := Generate(ctx, fixture(), WithEmitter(namesEmitter()))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("nil config", func(t *testing.T) {
		err := NewGenerator(nil, nil).Generate(ctx, fixture())
		assert.True(t, IsConfigError(err))
	})

	t.Run("emit", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "a.go")
		err := Generate(ctx, fixture(), WithOutput(out), WithEmitter(failing))
		require.Error(t, err)
		assert.True(t, IsGenerationError(err))
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "emit", genErr.Phase)
		assert.NoFileExists(t, out)
	})

	t.Run("render", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "a.go")
		err := Generate(ctx, fixture(), WithOutput(out), WithEmitter(broken))
		require.Error(t, err)
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "render", genErr.Phase)
		assert.NoFileExists(t, out)
	})

	t.Run("invalid schema", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "a.go")
		w := schema.New([]*schema.Entity{{
			Name:   "Post",
			Fields: []*schema.Field{{Name: "author", Kind: schema.KindRelation, Type: "Ghost"}},
		}}, nil, nil)
		err := Generate(ctx, w, WithOutput(out), WithEmitter(namesEmitter()))
		require.Error(t, err)
		assert.True(t, IsRelationError(err))
		assert.NoFileExists(t, out)
	})

	t.Run("close", func(t *testing.T) {
		closeErr := errors.New("disk quota exceeded")
		var w *failingCloser
		create := createFile
		t.Cleanup(func() { createFile = create })
		createFile = func(string) (io.WriteCloser, error) {
			w = &failingCloser{err: closeErr}
			return w, nil
		}
		err := Generate(ctx, fixture(), WithOutput(filepath.Join(t.TempDir(), "a.go")), WithEmitter(namesEmitter()))
		require.Error(t, err)
		assert.ErrorIs(t, err, closeErr)
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "write", genErr.Phase)
		require.NotNil(t, w)
		assert.True(t, w.closed)
		assert.Contains(t, w.String(), "package db")
	})

	t.Run("output is a directory", func(t *testing.T) {
		out := t.TempDir()
		err := Generate(ctx, fixture(), WithOutput(out), WithEmitter(namesEmitter()), WithFormat(false))
		require.Error(t, err)
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "write", genErr.Phase)
	})
}

// failingCloser buffers writes and fails on Close.
type failingCloser struct {
	bytes.Buffer
	err    error
	closed bool
}

func (w *failingCloser) Close() error {
	w.closed = true
	return w.err
}
