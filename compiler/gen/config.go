package gen

import (
	"path/filepath"
	"runtime"
)

// Defaults of a generation run.
const (
	DefaultPackage     = "db"
	DefaultOutput      = "db/db_gen.go"
	DefaultHeader      = "Prisma Client Go"
	DefaultRuntimePath = "github.com/sauhaardac/prisma-client-go/runtime"
)

// Config holds the configuration of a generation run.
type Config struct {
	// Package is the name of the generated Go package. Defaults to the
	// base name of the output directory.
	Package string
	// Output is the path of the generated file.
	Output string
	// Header is the generator name written into the "Code generated"
	// header.
	Header string
	// Workers bounds the number of types synthesized in parallel.
	// Zero means GOMAXPROCS.
	Workers int
	// RuntimePath is the import path of the runtime package used by the
	// generated code.
	RuntimePath string
	// DisableFormat skips goimports on the generated file.
	DisableFormat bool
	// Emitter renders the synthesized graph.
	Emitter Emitter
}

// PackageName returns the configured package name, or one derived from the
// output path.
func (c *Config) PackageName() string {
	if c.Package != "" {
		return c.Package
	}
	if c.Output != "" {
		if dir := filepath.Base(filepath.Dir(c.Output)); dir != "." && dir != string(filepath.Separator) {
			return dir
		}
	}
	return DefaultPackage
}

// HeaderComment returns the first line of the generated file.
func (c *Config) HeaderComment() string {
	h := c.Header
	if h == "" {
		h = DefaultHeader
	}
	return "Code generated by " + h + ". DO NOT EDIT."
}

// Runtime returns the import path of the runtime package.
func (c *Config) Runtime() string {
	if c.RuntimePath != "" {
		return c.RuntimePath
	}
	return DefaultRuntimePath
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
