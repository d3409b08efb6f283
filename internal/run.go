// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rsperl/google-drive-music-indexer/internal/catalog"
	"github.com/rsperl/google-drive-music-indexer/internal/hierarchy"
	"github.com/rsperl/google-drive-music-indexer/internal/sheet"
	"github.com/rsperl/google-drive-music-indexer/internal/store"
)

// Run executes one full indexing run: locate the destination worksheet,
// reset the catalog store, walk the configured roots, commit the catalog,
// and publish the ordered result.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{out: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("database_path", cfg.Database.Path),
		slog.String("sheet_name", cfg.Sheet.Name),
		slog.Int("roots", len(cfg.Index.Roots)),
		slog.Int("workers", cfg.Index.Workers),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Resolve the destination surface first: a missing worksheet must abort
	// the run before the store reset or the sheet clear happens.
	surface := app.surface
	if surface == nil && !app.preview {
		resolve := app.resolveSurface
		if resolve == nil {
			resolve = func(ctx context.Context) (sheet.Surface, error) {
				svc, err := sheet.NewGoogleService(ctx, cfg.Drive.CredentialsFile)
				if err != nil {
					return nil, fmt.Errorf("init sheets service: %w", err)
				}
				return sheet.OpenGoogleSurface(ctx, svc, cfg.Sheet.SpreadsheetID, cfg.Sheet.Name)
			}
		}
		s, err := resolve(ctx)
		if err != nil {
			return fmt.Errorf("locate worksheet: %w", err)
		}
		surface = s
	}

	client := app.hierarchy
	if client == nil {
		driveClient, err := hierarchy.NewDriveClient(ctx, cfg.Drive.CredentialsFile, cfg.Drive.PageSize)
		if err != nil {
			return fmt.Errorf("init drive client: %w", err)
		}
		client = driveClient
	}
	// The cache lives and dies with this run.
	client = hierarchy.NewCachedClient(client)

	cat := app.catalog
	if cat == nil {
		st, err := store.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("init catalog store: %w", err)
		}
		defer st.Close()
		cat = st
	}

	if err := cat.Reset(); err != nil {
		return fmt.Errorf("reset catalog store: %w", err)
	}

	roots := make([]catalog.Root, len(cfg.Index.Roots))
	for i, r := range cfg.Index.Roots {
		roots[i] = catalog.Root{ID: r.ID, Name: r.Name}
	}

	indexer := catalog.NewIndexer(client, cfg.Index.Instruments, cfg.Index.Workers, logger)
	entries, err := indexer.Index(ctx, roots)
	if err != nil {
		return fmt.Errorf("index hierarchy: %w", err)
	}
	logger.Info("Indexing complete", slog.Int("songs", len(entries)))

	for _, e := range entries {
		if err := cat.Upsert(e); err != nil {
			return fmt.Errorf("store catalog: %w", err)
		}
	}
	if err := cat.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}

	ordered, err := cat.AllOrdered()
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	if app.preview {
		fmt.Fprintln(app.out, renderPreview(ordered))
		return nil
	}

	if err := sheet.Publish(ctx, surface, ordered, logger); err != nil {
		return fmt.Errorf("publish catalog: %w", err)
	}

	logger.Info("Catalog published", slog.Int("rows", len(ordered)), slog.String("sheet_name", cfg.Sheet.Name))
	return nil
}
