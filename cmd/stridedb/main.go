// Package main is the entry point for the stridedb demonstration tool.
//
// stridedb manages file-backed tables of fixed-stride records: it can
// generate fixture databases, dump tables, and run demonstration joins
// that report their I/O cost.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	dbPath   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "stridedb",
	Short:         "Fixed-stride table engine demonstration tool.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "empresa.db", "Database root directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "stridedb: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var ll slog.Level
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %q", level)
	}

	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorableStderr(), &tint.Options{
		Level:   ll,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
	return nil
}
