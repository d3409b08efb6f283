package internal

import (
	"context"
	"io"

	"github.com/rsperl/google-drive-music-indexer/internal/hierarchy"
	"github.com/rsperl/google-drive-music-indexer/internal/sheet"
	"github.com/rsperl/google-drive-music-indexer/internal/store"
)

// Option is a functional option for configuring the application.
type Option func(*application)

// SurfaceResolver locates the destination surface for a run.
type SurfaceResolver func(ctx context.Context) (sheet.Surface, error)

type application struct {
	config         *Config
	hierarchy      hierarchy.Client
	surface        sheet.Surface
	resolveSurface SurfaceResolver
	catalog        store.Catalog
	preview        bool
	out            io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithHierarchyClient overrides the Drive-backed hierarchy client.
func WithHierarchyClient(c hierarchy.Client) Option {
	return func(a *application) {
		a.hierarchy = c
	}
}

// WithSurface overrides the Google Sheets destination surface.
func WithSurface(s sheet.Surface) Option {
	return func(a *application) {
		a.surface = s
	}
}

// WithSurfaceResolver overrides how the destination surface is located.
func WithSurfaceResolver(r SurfaceResolver) Option {
	return func(a *application) {
		a.resolveSurface = r
	}
}

// WithCatalogStore overrides the SQLite catalog store.
func WithCatalogStore(c store.Catalog) Option {
	return func(a *application) {
		a.catalog = c
	}
}

// WithPreview renders the ordered catalog as a table on the output writer
// instead of publishing it to the spreadsheet.
func WithPreview(enabled bool) Option {
	return func(a *application) {
		a.preview = enabled
	}
}

// WithOutput sets the writer used for preview rendering.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}
