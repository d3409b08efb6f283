// Package sheet renders the ordered catalog onto a spreadsheet surface.
package sheet

import "context"

// Surface is the minimal grid the publisher writes to. Row and column
// numbers are 1-indexed, matching spreadsheet conventions.
type Surface interface {
	// Clear removes every value from the surface.
	Clear(ctx context.Context) error
	// AppendRow adds a row of values after the last non-empty row.
	AppendRow(ctx context.Context, values []string) error
	// UpdateCell overwrites a single cell. Formula values are honored.
	UpdateCell(ctx context.Context, row, col int, value string) error
	// FreezeRows pins the first n rows while scrolling.
	FreezeRows(ctx context.Context, n int) error
	// SetBasicFilter enables a filter across the sheet's data.
	SetBasicFilter(ctx context.Context) error
	// FormatHeaderBold bolds the header row.
	FormatHeaderBold(ctx context.Context) error
	// AutoResizeColumns fits column widths to content for columns
	// first through last.
	AutoResizeColumns(ctx context.Context, first, last int) error
}
