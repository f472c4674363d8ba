// Package generator implements the plugin side of the generator protocol:
// the host starts the plugin, sends line-delimited JSON-RPC requests on its
// stdin and reads the responses from its stderr.
//
// A session answers any number of getManifest requests and ends with the
// response to the first generate request:
//
//	-> {"jsonrpc":"2.0","id":1,"method":"getManifest","params":{}}
//	<- {"jsonrpc":"2.0","id":1,"result":{"manifest":{"defaultOutput":"db/db_gen.go","prettyName":"Prisma Client Go"}}}
//	-> {"jsonrpc":"2.0","id":2,"method":"generate","params":{"datamodel":"...","generator":{...}}}
//	<- {"jsonrpc":"2.0","id":2,"result":null}
package generator

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/compiler/load"
)

// GenerateFunc runs one generation for the decoded params of a generate
// request.
type GenerateFunc func(ctx context.Context, req *load.Request) error

// Driver runs the protocol loop.
type Driver struct {
	name          string
	defaultOutput string
	generate      GenerateFunc
	genOpts       []gen.Option
	log           *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithName sets the pretty name reported in the manifest and in the header
// of generated files.
func WithName(name string) Option {
	return func(d *Driver) { d.name = name }
}

// WithDefaultOutput sets the output path reported in the manifest and used
// when a generate request has none.
func WithDefaultOutput(path string) Option {
	return func(d *Driver) { d.defaultOutput = path }
}

// WithGenerate replaces the generation pipeline.
func WithGenerate(fn GenerateFunc) Option {
	return func(d *Driver) { d.generate = fn }
}

// WithGenOptions appends options to the config of the default pipeline.
// They are applied after the options of the request.
func WithGenOptions(opts ...gen.Option) Option {
	return func(d *Driver) { d.genOpts = append(d.genOpts, opts...) }
}

// WithLogger sets the logger. The response stream is never used for logs.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// New returns a driver running the default pipeline unless WithGenerate
// is given.
func New(opts ...Option) *Driver {
	d := &Driver{
		name:          gen.DefaultHeader,
		defaultOutput: gen.DefaultOutput,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	if d.generate == nil {
		d.generate = d.pipeline
	}
	return d
}

// Manifest returns the manifest answered to getManifest.
func (d *Driver) Manifest() Manifest {
	return Manifest{DefaultOutput: d.defaultOutput, PrettyName: d.name}
}

// state is the position of the protocol loop.
type state uint8

const (
	awaitingRequest state = iota
	dispatching
	done
)

// Run answers requests read from r on w until a generate request has been
// answered. A failed generation is reported to the host and ends the
// session normally; Run returns a *ProtocolError only when the exchange
// itself fails.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	var (
		in   = bufio.NewReader(r)
		st   = awaitingRequest
		line int
		req  *Request
		resp *Response
	)
	for st != done {
		switch st {
		case awaitingRequest:
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := in.ReadBytes('\n')
			switch {
			case err != nil && !errors.Is(err, io.EOF):
				return &ProtocolError{Op: "read", Err: err}
			case len(bytes.TrimSpace(buf)) > 0:
				// A request, possibly without its trailing newline.
			case err != nil:
				return &ProtocolError{Op: "read", Err: fmt.Errorf("input closed before %s: %w", MethodGenerate, io.ErrUnexpectedEOF)}
			default:
				return &ProtocolError{Op: "decode", Line: line + 1, Err: errors.New("empty request")}
			}
			line++
			req = &Request{}
			if err := json.Unmarshal(buf, req); err != nil {
				return &ProtocolError{Op: "decode", Line: line, Err: err}
			}
			st = dispatching
		case dispatching:
			var err error
			resp, err = d.dispatch(ctx, req)
			if err != nil {
				return &ProtocolError{Op: "params", Line: line, Err: err}
			}
			if err := d.write(w, resp); err != nil {
				return &ProtocolError{Op: "write", Line: line, Err: err}
			}
			if req.Method == MethodGenerate {
				st = done
			} else {
				st = awaitingRequest
			}
		}
	}
	return nil
}

// dispatch answers one request. The error is non-nil only for generate
// params that cannot be decoded.
func (d *Driver) dispatch(ctx context.Context, req *Request) (*Response, error) {
	d.log.Debug("request", "method", req.Method, "id", string(req.ID))
	resp := &Response{ID: req.ID}
	switch req.Method {
	case MethodGetManifest:
		resp.Result = ManifestResult{Manifest: d.Manifest()}
	case MethodGenerate:
		params, err := load.UnmarshalRequest(req.Params)
		if err != nil {
			return nil, err
		}
		if err := d.generate(ctx, params); err != nil {
			d.log.Error("generation failed", "error", err)
			resp.Error = &Error{Code: 0, Message: err.Error()}
		}
	default:
		d.log.Warn("unknown method", "method", req.Method)
		resp.Error = &Error{Code: 0, Message: fmt.Sprintf("%s cannot handle method %s", d.name, req.Method)}
	}
	return resp, nil
}

func (d *Driver) write(w io.Writer, resp *Response) error {
	buf, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = w.Write(append(buf, '\n'))
	return err
}
