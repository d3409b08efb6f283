// Package hierarchy defines the remote folder-tree listing abstraction.
package hierarchy

import "context"

// Folder is a child folder as returned by the listing API.
type Folder struct {
	ID   string
	Name string
}

// Item is any immediate child of a folder, file or folder. Link is the
// item's browser view URL when the backend provides one.
type Item struct {
	ID     string
	Name   string
	Link   string
	Folder bool
}

// Client lists the immediate children of a remote folder.
// Implementations resolve pagination internally; callers always see the
// complete, flattened child list in one call.
type Client interface {
	// ListChildFolders returns the child folders of parentID.
	ListChildFolders(ctx context.Context, parentID string) ([]Folder, error)
	// ListChildItems returns every child of parentID, files and folders alike.
	ListChildItems(ctx context.Context, parentID string) ([]Item, error)
}
