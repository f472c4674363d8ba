package gen

import "github.com/dave/jennifer/jen"

// Emitter renders a synthesized graph into a single Go source file.
// Implementations must not mutate the graph.
type Emitter interface {
	// Name identifies the emitter in logs.
	Name() string
	// Emit renders the graph.
	Emit(g *Graph) (*jen.File, error)
}

// NewFile creates a jennifer file for the configured package with the
// generated-code header.
func (c *Config) NewFile() *jen.File {
	f := jen.NewFile(c.PackageName())
	f.HeaderComment(c.HeaderComment())
	return f
}
