package store

import (
	"os"
	"testing"

	"github.com/rsperl/google-drive-music-indexer/internal/catalog"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	f, err := os.CreateTemp("", "music-indexer-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	st, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return st
}

func mustUpsert(t *testing.T, st *Store, entries ...catalog.Entry) {
	t.Helper()
	for _, e := range entries {
		if err := st.Upsert(e); err != nil {
			t.Fatalf("Upsert %s: %v", e.DocumentID, err)
		}
	}
	if err := st.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

func TestResetYieldsEmptyCatalog(t *testing.T) {
	st := testStore(t)
	got, err := st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty catalog after reset, got %d entries", len(got))
	}
}

func TestResetDiscardsPriorEntries(t *testing.T) {
	st := testStore(t)
	mustUpsert(t, st, catalog.Entry{DocumentID: "S1", Artist: "Bo", Name: "Song1", Instrument: "guitar"})

	if err := st.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err := st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty catalog after reset, got %d entries", len(got))
	}
}

func TestUpsertReplacesByDocumentID(t *testing.T) {
	st := testStore(t)
	mustUpsert(t, st,
		catalog.Entry{DocumentID: "S1", Artist: "Bo", Name: "Old", Instrument: "guitar", Location: "L/Bo/guitar"},
		catalog.Entry{DocumentID: "S1", Artist: "Mo", Name: "New", Instrument: "ukulele", Location: "L/Mo/ukulele", Link: "http://x"},
	)

	got, err := st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	want := catalog.Entry{DocumentID: "S1", Artist: "Mo", Name: "New", Instrument: "ukulele", Location: "L/Mo/ukulele", Link: "http://x"}
	if got[0] != want {
		t.Errorf("entry = %+v, want %+v", got[0], want)
	}
}

func TestAllOrderedIsCaseInsensitive(t *testing.T) {
	st := testStore(t)
	mustUpsert(t, st,
		catalog.Entry{DocumentID: "1", Artist: "zara", Name: "A", Instrument: "guitar"},
		catalog.Entry{DocumentID: "2", Artist: "Anna", Name: "B", Instrument: "guitar"},
	)

	got, err := st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Artist != "Anna" || got[1].Artist != "zara" {
		t.Errorf("order = [%s, %s], want [Anna, zara]", got[0].Artist, got[1].Artist)
	}
}

func TestAllOrderedTieBreaksByNameThenInstrument(t *testing.T) {
	st := testStore(t)
	mustUpsert(t, st,
		catalog.Entry{DocumentID: "1", Artist: "Bo", Name: "Waltz", Instrument: "ukulele"},
		catalog.Entry{DocumentID: "2", Artist: "Bo", Name: "ballad", Instrument: "guitar"},
		catalog.Entry{DocumentID: "3", Artist: "Bo", Name: "Ballad", Instrument: "Guitar"},
		catalog.Entry{DocumentID: "4", Artist: "bo", Name: "Ballad", Instrument: "ukulele"},
	)

	got, err := st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	var ids []string
	for _, e := range got {
		ids = append(ids, e.DocumentID)
	}
	// ballad/Ballad compare equal on both artist and name; guitar sorts
	// before ukulele regardless of case, and Waltz comes last.
	wantFirstTwo := map[string]bool{"2": true, "3": true}
	if len(ids) != 4 || !wantFirstTwo[ids[0]] || !wantFirstTwo[ids[1]] || ids[2] != "4" || ids[3] != "1" {
		t.Errorf("order = %v, want guitar ballads, then ukulele ballad, then waltz", ids)
	}
}

func TestCommitMakesUpsertsVisible(t *testing.T) {
	st := testStore(t)
	if err := st.Upsert(catalog.Entry{DocumentID: "S1", Artist: "Bo", Name: "Song1", Instrument: "guitar"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("uncommitted upsert should not be visible, got %d entries", len(got))
	}

	if err := st.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	got, err = st.AllOrdered()
	if err != nil {
		t.Fatalf("AllOrdered: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 entry after commit, got %d", len(got))
	}
}

func TestCommitWithoutUpsertsIsNoop(t *testing.T) {
	st := testStore(t)
	if err := st.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}
