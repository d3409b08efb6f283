package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rsperl/google-drive-music-indexer/internal/hierarchy"
)

// Indexer walks the fixed root → artist → instrument → song hierarchy and
// emits one Entry per song found under a recognized instrument folder.
type Indexer struct {
	client     hierarchy.Client
	recognized map[string]struct{}
	workers    int
	logger     *slog.Logger
}

// NewIndexer builds an Indexer. Instrument names are matched
// case-insensitively. workers bounds the concurrent fan-out over artist
// folders; values below 2 keep the walk strictly sequential.
func NewIndexer(client hierarchy.Client, instruments []string, workers int, logger *slog.Logger) *Indexer {
	if len(instruments) == 0 {
		instruments = DefaultInstruments
	}
	recognized := make(map[string]struct{}, len(instruments))
	for _, name := range instruments {
		recognized[strings.ToLower(name)] = struct{}{}
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Indexer{
		client:     client,
		recognized: recognized,
		workers:    workers,
		logger:     logger,
	}
}

// Index walks every root in order and returns the catalog keyed by document
// identifier. When an identifier recurs, the later write replaces the
// earlier one. Listing failures propagate immediately; no partial catalog
// is returned.
func (ix *Indexer) Index(ctx context.Context, roots []Root) (map[string]Entry, error) {
	entries := make(map[string]Entry)
	var mu sync.Mutex

	for _, root := range roots {
		artists, err := ix.client.ListChildFolders(ctx, root.ID)
		if err != nil {
			return nil, fmt.Errorf("catalog: list artists under %q: %w", root.Name, err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(ix.workers)
		for _, artist := range artists {
			artist := artist
			g.Go(func() error {
				return ix.indexArtist(gctx, root, artist, entries, &mu)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// indexArtist catalogs every song under the artist's recognized instrument
// folders into entries.
func (ix *Indexer) indexArtist(ctx context.Context, root Root, artist hierarchy.Folder, entries map[string]Entry, mu *sync.Mutex) error {
	children, err := ix.client.ListChildItems(ctx, artist.ID)
	if err != nil {
		return fmt.Errorf("catalog: list children of artist %q: %w", artist.Name, err)
	}

	for _, child := range children {
		if !child.Folder {
			continue
		}
		instrument := child.Name
		if _, ok := ix.recognized[strings.ToLower(instrument)]; !ok {
			ix.logger.Info("skipping unrecognized instrument folder",
				slog.String("artist", artist.Name),
				slog.String("folder", instrument))
			continue
		}

		songs, err := ix.client.ListChildItems(ctx, child.ID)
		if err != nil {
			return fmt.Errorf("catalog: list songs under %q/%q: %w", artist.Name, instrument, err)
		}

		location := strings.Join([]string{root.Name, artist.Name, instrument}, "/")
		for _, song := range songs {
			entry := Entry{
				DocumentID: song.ID,
				Artist:     artist.Name,
				Name:       song.Name,
				Instrument: instrument,
				Location:   location,
				Link:       song.Link,
			}
			mu.Lock()
			if prev, ok := entries[song.ID]; ok {
				ix.logger.Warn("duplicate document id, keeping latest",
					slog.String("document_id", song.ID),
					slog.String("previous_artist", prev.Artist),
					slog.String("artist", entry.Artist))
			}
			entries[song.ID] = entry
			mu.Unlock()
			ix.logger.Info("found song",
				slog.String("artist", artist.Name),
				slog.String("name", song.Name),
				slog.String("instrument", instrument),
				slog.String("location", location))
		}
	}
	return nil
}
