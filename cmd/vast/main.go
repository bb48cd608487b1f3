package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/vito/vast/pkg/ioctx"
)

// Config holds the application configuration
type Config struct {
	Debug   bool
	Dialect string
	OutDir  string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "vast",
		Short: "Verilog AST builder and emitter",
		Long: `vast renders hardware modules described in TOML as Verilog-2005 or
SystemVerilog-2017 source.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(genCmd(&cfg))
	rootCmd.AddCommand(opsCmd())

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a text logger on stderr at Info, or Debug with
// --debug, and carries it on the context.
func setupLogging(ctx context.Context, cfg *Config) context.Context {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(ioctx.StderrFromContext(ctx), &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return ioctx.LoggerToContext(ctx, logger)
}
