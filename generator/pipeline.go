package generator

import (
	"context"
	"fmt"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/compiler/gen/golang"
	"github.com/sauhaardac/prisma-client-go/compiler/load"
)

// pipeline is the default generation: it parses the datamodel of the
// request, configures the Go emitter from the generator block and writes
// the client to the requested output.
func (d *Driver) pipeline(ctx context.Context, req *load.Request) error {
	opts, err := d.Options(req)
	if err != nil {
		return err
	}
	s, err := req.Schema()
	if err != nil {
		return err
	}
	c, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	d.log.Info("generating client", "generator", req.Generator.Name, "output", c.Output)
	return gen.NewGenerator(c, d.log).Generate(ctx, s)
}

// Options returns the generation options of a request: the driver
// defaults, then the generator config of the request, then the options
// given with WithGenOptions.
func (d *Driver) Options(req *load.Request) ([]gen.Option, error) {
	output := req.OutputPath()
	if output == "" {
		output = d.defaultOutput
	}
	opts := []gen.Option{
		gen.WithHeader(d.name),
		gen.WithOutput(output),
		gen.WithEmitter(golang.New()),
	}
	fromMap, err := gen.OptionsFromMap(req.Options())
	if err != nil {
		return nil, fmt.Errorf("generator %s: %w", req.Generator.Name, err)
	}
	opts = append(opts, fromMap...)
	return append(opts, d.genOpts...), nil
}
