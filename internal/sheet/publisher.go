package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rsperl/google-drive-music-indexer/internal/catalog"
)

// Header is the fixed column header row of the published catalog.
var Header = []string{"Artist", "Name", "Instrument", "Location", "Document ID"}

// nameColumn is the 1-indexed column holding the hyperlinked song name.
const nameColumn = 2

// Publish clears the surface and writes the catalog: a frozen, bold,
// filterable header followed by one row per entry in the given order, with
// each name cell overwritten by a hyperlink to the entry's source item.
// Entries must already be sorted; Publish preserves their order.
func Publish(ctx context.Context, surface Surface, entries []catalog.Entry, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := surface.Clear(ctx); err != nil {
		return fmt.Errorf("sheet: clear: %w", err)
	}
	if err := surface.AppendRow(ctx, Header); err != nil {
		return fmt.Errorf("sheet: write header: %w", err)
	}
	if err := surface.FreezeRows(ctx, 1); err != nil {
		return fmt.Errorf("sheet: freeze header: %w", err)
	}
	if err := surface.SetBasicFilter(ctx); err != nil {
		return fmt.Errorf("sheet: set filter: %w", err)
	}
	if err := surface.FormatHeaderBold(ctx); err != nil {
		return fmt.Errorf("sheet: bold header: %w", err)
	}

	// The first data row sits directly under the frozen header, so entry i
	// lands on spreadsheet row i+2.
	for i, e := range entries {
		logger.Info("adding row",
			slog.String("artist", e.Artist),
			slog.String("name", e.Name),
			slog.String("instrument", e.Instrument))

		row := []string{e.Artist, e.Name, e.Instrument, e.Location, e.DocumentID}
		if err := surface.AppendRow(ctx, row); err != nil {
			return fmt.Errorf("sheet: append row %s: %w", e.DocumentID, err)
		}
		if err := surface.UpdateCell(ctx, i+2, nameColumn, nameCell(e)); err != nil {
			return fmt.Errorf("sheet: link name cell %s: %w", e.DocumentID, err)
		}
	}

	if err := surface.AutoResizeColumns(ctx, 1, len(Header)); err != nil {
		return fmt.Errorf("sheet: auto-resize columns: %w", err)
	}
	return nil
}

// nameCell renders the hyperlink formula for an entry's name, degrading to
// plain text when the entry has no link.
func nameCell(e catalog.Entry) string {
	if e.Link == "" {
		return e.Name
	}
	esc := func(s string) string { return strings.ReplaceAll(s, `"`, `""`) }
	return fmt.Sprintf(`=HYPERLINK("%s", "%s")`, esc(e.Link), esc(e.Name))
}
