package sheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rsperl/google-drive-music-indexer/internal/apperr"
)

// NewGoogleService builds a Sheets API client authenticated with the given
// service-account credentials file.
func NewGoogleService(ctx context.Context, credentialsFile string) (*sheets.Service, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheet: build sheets service: %w", err)
	}
	return svc, nil
}

// GoogleSurface implements Surface against one worksheet of a Google
// spreadsheet.
type GoogleSurface struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetID       int64
	title         string
}

// OpenGoogleSurface locates the worksheet with the given title inside the
// spreadsheet. It returns apperr.ErrSheetNotFound, without touching the
// spreadsheet, when no worksheet carries that title.
func OpenGoogleSurface(ctx context.Context, svc *sheets.Service, spreadsheetID, title string) (*GoogleSurface, error) {
	ss, err := svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheet: get spreadsheet %s: %w", spreadsheetID, err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return &GoogleSurface{
				svc:           svc,
				spreadsheetID: spreadsheetID,
				sheetID:       s.Properties.SheetId,
				title:         title,
			}, nil
		}
	}
	return nil, fmt.Errorf("sheet: %w: %q", apperr.ErrSheetNotFound, title)
}

// Clear implements Surface.
func (g *GoogleSurface) Clear(ctx context.Context) error {
	_, err := g.svc.Spreadsheets.Values.
		Clear(g.spreadsheetID, a1Title(g.title), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheet: clear values: %w", err)
	}
	return nil
}

// AppendRow implements Surface.
func (g *GoogleSurface) AppendRow(ctx context.Context, values []string) error {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	_, err := g.svc.Spreadsheets.Values.
		Append(g.spreadsheetID, a1Title(g.title), &sheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheet: append row: %w", err)
	}
	return nil
}

// UpdateCell implements Surface. Formulas are interpreted, so a HYPERLINK
// value renders as a link rather than literal text.
func (g *GoogleSurface) UpdateCell(ctx context.Context, row, col int, value string) error {
	cell := fmt.Sprintf("%s!%s%d", a1Title(g.title), columnLetter(col), row)
	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, cell, &sheets.ValueRange{Values: [][]any{{value}}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheet: update cell %s: %w", cell, err)
	}
	return nil
}

// FreezeRows implements Surface.
func (g *GoogleSurface) FreezeRows(ctx context.Context, n int) error {
	return g.batchUpdate(ctx, &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: g.sheetID,
				GridProperties: &sheets.GridProperties{
					FrozenRowCount: int64(n),
				},
			},
			Fields: "gridProperties.frozenRowCount",
		},
	})
}

// SetBasicFilter implements Surface.
func (g *GoogleSurface) SetBasicFilter(ctx context.Context) error {
	return g.batchUpdate(ctx, &sheets.Request{
		SetBasicFilter: &sheets.SetBasicFilterRequest{
			Filter: &sheets.BasicFilter{
				Range: &sheets.GridRange{SheetId: g.sheetID},
			},
		},
	})
}

// FormatHeaderBold implements Surface.
func (g *GoogleSurface) FormatHeaderBold(ctx context.Context) error {
	return g.batchUpdate(ctx, &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: &sheets.GridRange{
				SheetId:       g.sheetID,
				StartRowIndex: 0,
				EndRowIndex:   1,
			},
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					TextFormat: &sheets.TextFormat{Bold: true},
				},
			},
			Fields: "userEnteredFormat.textFormat.bold",
		},
	})
}

// AutoResizeColumns implements Surface.
func (g *GoogleSurface) AutoResizeColumns(ctx context.Context, first, last int) error {
	return g.batchUpdate(ctx, &sheets.Request{
		AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
			Dimensions: &sheets.DimensionRange{
				SheetId:    g.sheetID,
				Dimension:  "COLUMNS",
				StartIndex: int64(first - 1),
				EndIndex:   int64(last),
			},
		},
	})
}

func (g *GoogleSurface) batchUpdate(ctx context.Context, reqs ...*sheets.Request) error {
	_, err := g.svc.Spreadsheets.
		BatchUpdate(g.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheet: batch update: %w", err)
	}
	return nil
}

// a1Title quotes a worksheet title for use in A1 notation, so titles with
// spaces or apostrophes form valid ranges.
func a1Title(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// columnLetter converts a 1-indexed column number to its A1 letter form.
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}

// Verify *GoogleSurface satisfies Surface at compile time.
var _ Surface = (*GoogleSurface)(nil)
