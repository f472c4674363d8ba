// Package load decodes the precomputed schema payload sent with a generate
// request into schema descriptors.
package load

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// Request holds the params of a generate request.
type Request struct {
	// Datamodel is the normalized datamodel document.
	Datamodel  string    `json:"datamodel"`
	SchemaPath string    `json:"schemaPath,omitempty"`
	Version    string    `json:"version,omitempty"`
	Generator  Generator `json:"generator"`
}

// Generator is the generator block of the schema the request was made for.
type Generator struct {
	Name     string    `json:"name"`
	Provider *EnvValue `json:"provider,omitempty"`
	Output   *EnvValue `json:"output,omitempty"`
	// Config holds the free-form entries of the block. Only string values
	// are used as options.
	Config map[string]any `json:"config,omitempty"`
}

// EnvValue is a value that may be read from the environment.
type EnvValue struct {
	FromEnvVar string `json:"fromEnvVar,omitempty"`
	Value      string `json:"value,omitempty"`
}

// Get returns the environment variable if it is set and non-empty, and
// the literal value otherwise.
func (v *EnvValue) Get() string {
	if v == nil {
		return ""
	}
	if v.FromEnvVar != "" {
		if env := os.Getenv(v.FromEnvVar); env != "" {
			return env
		}
	}
	return v.Value
}

// UnmarshalRequest decodes the params of a generate request.
func UnmarshalRequest(buf []byte) (*Request, error) {
	r := &Request{}
	if err := json.Unmarshal(buf, r); err != nil {
		return nil, fmt.Errorf("load: decode generate params: %w", err)
	}
	if r.Datamodel == "" {
		return nil, fmt.Errorf("load: generate params have no datamodel")
	}
	return r, nil
}

// OutputPath returns the configured output path, or "" if none was set.
func (r *Request) OutputPath() string { return r.Generator.Output.Get() }

// Options returns the string entries of the generator config.
func (r *Request) Options() map[string]string {
	opts := make(map[string]string, len(r.Generator.Config))
	for k, v := range r.Generator.Config {
		if s, ok := v.(string); ok {
			opts[k] = s
		}
	}
	return opts
}

// Schema parses the datamodel of the request.
func (r *Request) Schema() (*schema.Schema, error) {
	return Parse([]byte(r.Datamodel))
}
