// Package catalog builds the deduplicated song catalog from the remote
// folder hierarchy.
package catalog

// Entry is one cataloged song, keyed by its document identifier.
type Entry struct {
	DocumentID string
	Artist     string
	Name       string
	Instrument string
	Location   string
	Link       string
}

// Root is one configured top-level folder under which the
// artist/instrument/song structure is expected.
type Root struct {
	ID   string
	Name string
}

// DefaultInstruments is the instrument-folder allow-list used when the
// configuration does not provide one.
var DefaultInstruments = []string{"guitar", "ukulele"}
