package internal

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rsperl/google-drive-music-indexer/internal/catalog"
	"github.com/rsperl/google-drive-music-indexer/internal/sheet"
)

// renderPreview renders the ordered catalog as a terminal table with the
// same columns the spreadsheet would get.
func renderPreview(entries []catalog.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, e := range entries {
		tw.AppendRow(table.Row{e.Artist, e.Name, e.Instrument, e.Location, e.DocumentID})
	}

	return tw.Render()
}
