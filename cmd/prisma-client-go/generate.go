package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/compiler/gen/golang"
	"github.com/sauhaardac/prisma-client-go/compiler/load"
)

// fileConfig is the document read with --config. Flags override it.
type fileConfig struct {
	Schema  string            `yaml:"schema"`
	Output  string            `yaml:"output"`
	Package string            `yaml:"package"`
	Options map[string]string `yaml:"options"`
}

func readConfig(path string) (*fileConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(buf, fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	// Relative paths are relative to the config file.
	dir := filepath.Dir(path)
	for _, p := range []*string{&fc.Schema, &fc.Output} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return fc, nil
}

type generateFlags struct {
	config  string
	schema  string
	output  string
	pkg     string
	watch   bool
	workers int
}

func newGenerateCmd(rf *rootFlags) *cobra.Command {
	gf := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the client from a datamodel document",
		Example: `  prisma-client-go generate --schema datamodel.yaml --output db/db_gen.go
  prisma-client-go generate --config prisma-client.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, closeLog, err := rf.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()
			schemaPath, opts, err := gf.resolve(cmd)
			if err != nil {
				return err
			}
			c, err := gen.NewConfig(opts...)
			if err != nil {
				return err
			}
			g := gen.NewGenerator(c, log)
			err = generateFile(cmd.Context(), g, schemaPath)
			if !gf.watch {
				return err
			}
			if err != nil {
				log.Error("generation failed", "schema", schemaPath, "error", err)
			}
			return watch(cmd.Context(), schemaPath, log, func() error {
				return generateFile(cmd.Context(), g, schemaPath)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&gf.config, "config", "c", "", "YAML file holding schema, output, package and options")
	f.StringVarP(&gf.schema, "schema", "s", "", "Datamodel document (YAML or JSON)")
	f.StringVarP(&gf.output, "output", "o", "", "Generated file (default "+gen.DefaultOutput+")")
	f.StringVarP(&gf.pkg, "package", "p", "", "Generated package name (default: output directory name)")
	f.IntVar(&gf.workers, "workers", 0, "Types synthesized in parallel (default GOMAXPROCS)")
	f.BoolVarP(&gf.watch, "watch", "w", false, "Regenerate whenever the datamodel changes")
	return cmd
}

// resolve merges the config file and the flags into the datamodel path and
// the generation options.
func (gf *generateFlags) resolve(cmd *cobra.Command) (string, []gen.Option, error) {
	fc := &fileConfig{}
	if gf.config != "" {
		var err error
		if fc, err = readConfig(gf.config); err != nil {
			return "", nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("schema") {
		fc.Schema = gf.schema
	}
	if flags.Changed("output") {
		fc.Output = gf.output
	}
	if flags.Changed("package") {
		fc.Package = gf.pkg
	}
	if fc.Schema == "" {
		return "", nil, errors.New("no datamodel: set --schema or schema in --config")
	}
	if fc.Output == "" {
		fc.Output = gen.DefaultOutput
	}
	opts, err := gen.OptionsFromMap(fc.Options)
	if err != nil {
		return "", nil, err
	}
	opts = append([]gen.Option{gen.WithOutput(fc.Output), gen.WithEmitter(golang.New())}, opts...)
	if fc.Package != "" {
		opts = append(opts, gen.WithPackage(fc.Package))
	}
	if flags.Changed("workers") {
		opts = append(opts, gen.WithWorkers(gf.workers))
	}
	return fc.Schema, opts, nil
}

func generateFile(ctx context.Context, g *gen.Generator, schemaPath string) error {
	s, err := load.ParseFile(schemaPath)
	if err != nil {
		return err
	}
	return g.Generate(ctx, s)
}

// debounce is how long watch waits for more events before regenerating.
const debounce = 100 * time.Millisecond

// watch calls fn after the file at path changes, until ctx is done. The
// parent directory is watched so that editors replacing the file are
// seen.
func watch(ctx context.Context, path string, log *slog.Logger, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)
	log.Info("watching datamodel", "schema", target)

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		case <-timer.C:
			if err := fn(); err != nil {
				log.Error("generation failed", "schema", target, "error", err)
				continue
			}
			log.Debug("regenerated", "schema", target)
		}
	}
}
