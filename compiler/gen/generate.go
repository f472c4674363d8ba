package gen

import (
	"context"
	"log/slog"
	"time"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// Generator runs the synthesis, emission and write phases of one
// generation.
type Generator struct {
	config *Config
	log    *slog.Logger
}

// NewGenerator creates a generator for the given configuration. A nil
// logger discards all records.
func NewGenerator(c *Config, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{config: c, log: log}
}

// Generate synthesizes the API of the data model reachable through w and
// writes it to the configured output file.
func (g *Generator) Generate(ctx context.Context, w schema.Walker) error {
	c := g.config
	switch {
	case c == nil:
		return NewConfigError("Config", nil, "config cannot be nil")
	case c.Emitter == nil:
		return NewConfigError("Emitter", nil, "no emitter set: use WithEmitter")
	case c.Output == "":
		return NewConfigError("Output", nil, "missing output path")
	}
	start := time.Now()
	graph, err := NewGraph(ctx, c, w)
	if err != nil {
		return err
	}
	g.log.Debug("synthesized graph",
		"entities", len(graph.Nodes),
		"composites", len(graph.Composites),
		"enums", len(graph.Enums),
		"took", time.Since(start),
	)
	f, err := c.Emitter.Emit(graph)
	if err != nil {
		return NewGenerationError("emit", c.Output, c.Emitter.Name(), err)
	}
	n, err := writeFile(c, f)
	if err != nil {
		return err
	}
	g.log.Info("generated client",
		"output", c.Output,
		"package", c.PackageName(),
		"bytes", n,
		"took", time.Since(start),
	)
	return nil
}

// Generate is a convenience wrapper running a Generator without logging.
func Generate(ctx context.Context, w schema.Walker, opts ...Option) error {
	c, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	return NewGenerator(c, nil).Generate(ctx, w)
}
