// Package testutil provides shared test helpers: temporary catalog stores
// and in-memory stand-ins for the Drive and Sheets collaborators.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/rsperl/google-drive-music-indexer/internal/hierarchy"
	"github.com/rsperl/google-drive-music-indexer/internal/store"
)

// TestStore creates a temporary SQLite catalog store that is automatically
// cleaned up.
func TestStore(t *testing.T) *store.Store {
	t.Helper()
	dbFile, err := os.CreateTemp("", "music-indexer-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	st, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// StubHierarchy is an in-memory hierarchy.Client serving canned listings
// keyed by parent folder id. It counts fetches per parent so tests can
// verify caching behavior.
type StubHierarchy struct {
	Folders map[string][]hierarchy.Folder
	Items   map[string][]hierarchy.Item
	// Errs makes listings for the given parent id fail.
	Errs map[string]error

	FolderCalls map[string]int
	ItemCalls   map[string]int
}

// ListChildFolders implements hierarchy.Client.
func (s *StubHierarchy) ListChildFolders(_ context.Context, parentID string) ([]hierarchy.Folder, error) {
	if s.FolderCalls == nil {
		s.FolderCalls = make(map[string]int)
	}
	s.FolderCalls[parentID]++
	if err := s.Errs[parentID]; err != nil {
		return nil, err
	}
	return s.Folders[parentID], nil
}

// ListChildItems implements hierarchy.Client.
func (s *StubHierarchy) ListChildItems(_ context.Context, parentID string) ([]hierarchy.Item, error) {
	if s.ItemCalls == nil {
		s.ItemCalls = make(map[string]int)
	}
	s.ItemCalls[parentID]++
	if err := s.Errs[parentID]; err != nil {
		return nil, err
	}
	return s.Items[parentID], nil
}

// Cell addresses a single spreadsheet cell, 1-indexed.
type Cell struct {
	Row, Col int
}

// FakeSurface records every publisher operation in memory.
type FakeSurface struct {
	Rows       [][]string
	Cells      map[Cell]string
	FrozenRows int
	FilterSet  bool
	BoldHeader bool
	ResizedTo  [2]int
	// Ops records operation names in call order.
	Ops []string
}

// Clear implements sheet.Surface.
func (f *FakeSurface) Clear(context.Context) error {
	f.Rows = nil
	f.Cells = nil
	f.Ops = append(f.Ops, "clear")
	return nil
}

// AppendRow implements sheet.Surface.
func (f *FakeSurface) AppendRow(_ context.Context, values []string) error {
	row := make([]string, len(values))
	copy(row, values)
	f.Rows = append(f.Rows, row)
	f.Ops = append(f.Ops, "append")
	return nil
}

// UpdateCell implements sheet.Surface.
func (f *FakeSurface) UpdateCell(_ context.Context, row, col int, value string) error {
	if f.Cells == nil {
		f.Cells = make(map[Cell]string)
	}
	f.Cells[Cell{row, col}] = value
	f.Ops = append(f.Ops, "update")
	return nil
}

// FreezeRows implements sheet.Surface.
func (f *FakeSurface) FreezeRows(_ context.Context, n int) error {
	f.FrozenRows = n
	f.Ops = append(f.Ops, "freeze")
	return nil
}

// SetBasicFilter implements sheet.Surface.
func (f *FakeSurface) SetBasicFilter(context.Context) error {
	f.FilterSet = true
	f.Ops = append(f.Ops, "filter")
	return nil
}

// FormatHeaderBold implements sheet.Surface.
func (f *FakeSurface) FormatHeaderBold(context.Context) error {
	f.BoldHeader = true
	f.Ops = append(f.Ops, "bold")
	return nil
}

// AutoResizeColumns implements sheet.Surface.
func (f *FakeSurface) AutoResizeColumns(_ context.Context, first, last int) error {
	f.ResizedTo = [2]int{first, last}
	f.Ops = append(f.Ops, "resize")
	return nil
}
