package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/vito/vast/pkg/design"
	"github.com/vito/vast/pkg/ioctx"
	"golang.org/x/sync/errgroup"
)

func genCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [flags] FILE...",
		Short: "Render TOML module descriptions",
		Long: `Render every module described in the given TOML files.

By default, gen prints the rendered modules to stdout.
Use --out to write one file per module into a directory instead.

Module headers are always rendered with an empty port list. Ports and params
are validated but not emitted; declare signals in decls to have them appear
in the module body.`,
		Example: `  # Print Verilog-2005 for a design
  vast gen design.toml

  # Render as SystemVerilog regardless of the file's dialect
  vast gen --dialect v17 design.toml

  # Write one file per module
  vast gen --out rtl/ cpu.toml alu.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cfg)
			return runGen(ctx, cfg, args)
		},
	}

	cmd.Flags().StringVar(&cfg.Dialect, "dialect", "", "Override the dialect of every file (v05, v17)")
	cmd.Flags().StringVarP(&cfg.OutDir, "out", "o", "", "Directory to write rendered modules to")

	return cmd
}

func runGen(ctx context.Context, cfg *Config, paths []string) error {
	logger := ioctx.LoggerFromContext(ctx)

	// Files are independent; render them concurrently but emit in argument
	// order.
	results := make([][]design.Rendered, len(paths))
	eg, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			d, err := design.Load(path)
			if err != nil {
				return err
			}
			if cfg.Debug {
				logger.Debug("loaded design", "path", path, "design", pretty.Sprint(d))
			}
			rendered, err := d.Render(gctx, cfg.Dialect)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = rendered
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if cfg.OutDir == "" {
		return writeAll(ioctx.StdoutFromContext(ctx), results)
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.OutDir, err)
	}
	for _, rendered := range results {
		for _, r := range rendered {
			path := filepath.Join(cfg.OutDir, r.Filename())
			if err := os.WriteFile(path, []byte(r.Source+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("wrote module", "module", r.Module, "path", path)
		}
	}
	return nil
}

func writeAll(w io.Writer, results [][]design.Rendered) error {
	var all []design.Rendered
	for _, rendered := range results {
		all = append(all, rendered...)
	}
	_, err := io.WriteString(w, design.Join(all))
	return err
}
