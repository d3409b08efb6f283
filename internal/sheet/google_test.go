package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rsperl/google-drive-music-indexer/internal/apperr"
)

func testSheetsService(t *testing.T, handler http.HandlerFunc) *sheets.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func spreadsheetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"book","sheets":[{"properties":{"sheetId":7,"title":"Songs"}}]}`))
	}
}

func TestOpenGoogleSurface_FindsWorksheetByTitle(t *testing.T) {
	svc := testSheetsService(t, spreadsheetHandler())

	surface, err := OpenGoogleSurface(context.Background(), svc, "book", "Songs")
	if err != nil {
		t.Fatalf("OpenGoogleSurface: %v", err)
	}
	if surface.sheetID != 7 {
		t.Errorf("sheetID = %d, want 7", surface.sheetID)
	}
}

func TestOpenGoogleSurface_MissingWorksheet(t *testing.T) {
	svc := testSheetsService(t, spreadsheetHandler())

	_, err := OpenGoogleSurface(context.Background(), svc, "book", "Ballads")
	if !errors.Is(err, apperr.ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestGoogleSurface_UpdateCellQuotesTitle(t *testing.T) {
	var gotPath string
	svc := testSheetsService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	g := &GoogleSurface{svc: svc, spreadsheetID: "book", sheetID: 1, title: "My Songs"}

	if err := g.UpdateCell(context.Background(), 2, 2, "x"); err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}
	want := "/v4/spreadsheets/book/values/'My Songs'!B2"
	if gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
}

func TestA1Title(t *testing.T) {
	cases := map[string]string{
		"Songs":     "'Songs'",
		"My Songs":  "'My Songs'",
		"Bob's Set": "'Bob''s Set'",
	}
	for title, want := range cases {
		if got := a1Title(title); got != want {
			t.Errorf("a1Title(%q) = %q, want %q", title, got, want)
		}
	}
}
