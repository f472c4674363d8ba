package gen

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// createFile opens the output file for writing.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// writeFile renders f, formats it with goimports unless disabled and writes
// it to the configured output, replacing any existing file. It returns the
// number of bytes written.
func writeFile(c *Config, f *jen.File) (int, error) {
	path := c.Output
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return 0, NewGenerationError("render", path, "", err)
	}
	src := buf.Bytes()
	if !c.DisableFormat {
		formatted, err := imports.Process(path, src, nil)
		if err != nil {
			// Keep the unformatted source around for debugging.
			debugPath := path + ".error"
			_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
			_ = os.WriteFile(debugPath, src, 0o644)
			return 0, NewGenerationError("format", path, "unformatted source written to "+debugPath, err)
		}
		src = formatted
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, NewGenerationError("write", path, "create directory", err)
	}
	out, err := createFile(path)
	if err != nil {
		return 0, NewGenerationError("write", path, "", err)
	}
	n, err := out.Write(src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, NewGenerationError("write", path, "", err)
	}
	return n, nil
}
