package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marquee/internal/aggregate"
	"marquee/internal/logging"
	"marquee/internal/source"
	"marquee/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the catalog whenever the source dataset changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cache, err := ctx.ensureCache()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			entry, err := cache.Get(runCtx)
			if err != nil {
				return err
			}
			printCatalogBadges(out, aggregate.Compare(entry.Catalog.All(), entry.Catalog.All()))

			files := []string{cfg.Source.Path}
			if cfg.Source.Format == "sqlite" {
				files = append(files, cfg.Source.Path+"-wal")
			}
			w, err := watcher.New(watcher.Options{Files: files, Debounce: cfg.WatchDebounce()}, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", cfg.Source.Path)

			generation := entry.Generation

			return w.Run(runCtx, func(ctx context.Context, change watcher.Change) {
				entry, err := cache.Get(ctx)
				if err != nil {
					if errors.Is(err, source.ErrNotFound) {
						logging.WarnWithContext(logger, "source dataset missing", "source_missing",
							logging.String(logging.FieldSource, cfg.Source.Path),
							logging.String(logging.FieldImpact, "previous catalog stays in use"),
							logging.String(logging.FieldErrorHint, "restore the dataset file"))
						return
					}
					logging.WarnWithContext(logger, "catalog rebuild failed", "catalog_rebuild_failed",
						logging.Error(err),
						logging.String(logging.FieldImpact, "previous catalog stays in use"),
						logging.String(logging.FieldErrorHint, "check the dataset for partial writes"))
					return
				}
				if entry.Generation == generation {
					logger.Debug("source content unchanged", logging.Int("paths", len(change.Paths)))
					return
				}
				generation = entry.Generation
				fmt.Fprintf(out, "Rebuilt generation %s: ", entry.Generation)
				printCatalogBadges(out, aggregate.Compare(entry.Catalog.All(), entry.Catalog.All()))
			})
		},
	}
}
