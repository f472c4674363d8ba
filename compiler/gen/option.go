package gen

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the generator name of the "Code generated" header.
func WithHeader(name string) Option {
	return func(c *Config) error {
		c.Header = name
		return nil
	}
}

// WithPackage sets the name of the generated package.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "package must be a Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithOutput sets the path of the generated file.
func WithOutput(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Output", nil, "output path cannot be empty")
		}
		c.Output = path
		return nil
	}
}

// WithWorkers bounds the number of types synthesized in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithRuntimePackage sets the import path of the runtime package the
// generated code depends on.
func WithRuntimePackage(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RuntimePath", nil, "runtime package cannot be empty")
		}
		c.RuntimePath = path
		return nil
	}
}

// WithFormat enables or disables goimports on the generated file.
func WithFormat(enabled bool) Option {
	return func(c *Config) error {
		c.DisableFormat = !enabled
		return nil
	}
}

// WithEmitter sets the emitter rendering the graph.
func WithEmitter(e Emitter) Option {
	return func(c *Config) error {
		if e == nil {
			return NewConfigError("Emitter", nil, "emitter cannot be nil")
		}
		c.Emitter = e
		return nil
	}
}

// OptionsFromMap converts the config block of a generator declaration into
// options. Unknown keys are ignored.
//
//	generator db {
//	  provider     = "prisma-client-go"
//	  package      = "db"
//	  disableGofmt = "true"
//	  workers      = "4"
//	}
func OptionsFromMap(m map[string]string) ([]Option, error) {
	var (
		opts []Option
		errs []error
	)
	if v, ok := m["package"]; ok {
		opts = append(opts, WithPackage(v))
	}
	if v, ok := m["disableGofmt"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, NewConfigError("disableGofmt", v, fmt.Sprintf("not a boolean: %v", err)))
		} else {
			opts = append(opts, WithFormat(!b))
		}
	}
	if v, ok := m["workers"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, NewConfigError("workers", v, "not an integer"))
		} else {
			opts = append(opts, WithWorkers(n))
		}
	}
	return opts, errors.Join(errs...)
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
