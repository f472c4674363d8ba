// Command prisma-client-go generates a typed Go client for a Prisma data
// model.
//
// Started without arguments it runs as a generator plugin of the Prisma
// CLI, answering requests on stdin and stderr. The generate subcommand
// compiles a datamodel document directly.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sauhaardac/prisma-client-go/generator"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// flags shared by all commands.
type rootFlags struct {
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "prisma-client-go",
		Short:         "Generate a typed Go client for a Prisma data model",
		Long:          `prisma-client-go synthesizes the filter, mutation and query API of every model of a Prisma data model. Without a subcommand it speaks the generator protocol of the Prisma CLI on stdin and stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, closeLog, err := rf.logger(nil)
			if err != nil {
				return err
			}
			defer closeLog()
			return generator.New(generator.WithLogger(log)).Run(cmd.Context(), cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&rf.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.AddCommand(newGenerateCmd(rf), newVersionCmd())
	return cmd
}

// logger returns the logger selected by the flags. Without --log-file it
// writes to fallback, or discards when fallback is nil.
func (rf *rootFlags) logger(fallback io.Writer) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rf.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", rf.logLevel, err)
	}
	w := fallback
	closeLog := func() {}
	if rf.logFile != "" {
		f, err := os.OpenFile(rf.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}
	if w == nil {
		return slog.New(slog.DiscardHandler), closeLog, nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeLog, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prisma-client-go %s\n", version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "prisma-client-go:", err)
		stop()
		os.Exit(1)
	}
}
