package hierarchy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FolderCache memoizes listing results for the duration of one indexing run,
// so repeated visits to the same folder cost one remote call even when
// sibling artist folders share instrument names. There is no eviction: the
// cache is owned by a single run and discarded with it.
type FolderCache struct {
	mu      sync.Mutex
	folders map[string][]Folder
	items   map[string][]Item
	group   singleflight.Group
}

// NewFolderCache returns an empty cache.
func NewFolderCache() *FolderCache {
	return &FolderCache{
		folders: make(map[string][]Folder),
		items:   make(map[string][]Item),
	}
}

// Folders returns the cached child folders of id, invoking fetch on first
// use. A failed fetch is not cached; the next call retries.
func (c *FolderCache) Folders(id string, fetch func() ([]Folder, error)) ([]Folder, error) {
	c.mu.Lock()
	if cached, ok := c.folders[id]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("folders/"+id, func() (any, error) {
		fetched, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.folders[id] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Folder), nil
}

// Items returns the cached children of id, invoking fetch on first use.
// A failed fetch is not cached; the next call retries.
func (c *FolderCache) Items(id string, fetch func() ([]Item, error)) ([]Item, error) {
	c.mu.Lock()
	if cached, ok := c.items[id]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("items/"+id, func() (any, error) {
		fetched, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items[id] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Item), nil
}

// CachedClient wraps a Client with a per-run FolderCache.
type CachedClient struct {
	inner Client
	cache *FolderCache
}

// NewCachedClient returns a Client that memoizes inner's listings for the
// lifetime of the wrapper.
func NewCachedClient(inner Client) *CachedClient {
	return &CachedClient{inner: inner, cache: NewFolderCache()}
}

// ListChildFolders implements Client. The underlying fetch may be shared by
// concurrent callers, so it must not inherit any single caller's
// cancellation.
func (c *CachedClient) ListChildFolders(ctx context.Context, parentID string) ([]Folder, error) {
	fetchCtx := context.WithoutCancel(ctx)
	return c.cache.Folders(parentID, func() ([]Folder, error) {
		return c.inner.ListChildFolders(fetchCtx, parentID)
	})
}

// ListChildItems implements Client. The underlying fetch may be shared by
// concurrent callers, so it must not inherit any single caller's
// cancellation.
func (c *CachedClient) ListChildItems(ctx context.Context, parentID string) ([]Item, error) {
	fetchCtx := context.WithoutCancel(ctx)
	return c.cache.Items(parentID, func() ([]Item, error) {
		return c.inner.ListChildItems(fetchCtx, parentID)
	})
}

// Verify *CachedClient satisfies Client at compile time.
var _ Client = (*CachedClient)(nil)
