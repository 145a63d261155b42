package devblog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/navidjalilian/devblog/content"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("devblog: not found")

// CollectionCache is an in-memory cache of the loaded blog collection.
// A ttl of zero keeps the collection until Invalidate is called.
type CollectionCache struct {
	mu      sync.RWMutex
	posts   content.Collection
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	loader  *content.Loader
}

// NewCollectionCache creates a CollectionCache backed by the given Loader.
func NewCollectionCache(l *content.Loader, ttl time.Duration) *CollectionCache {
	return &CollectionCache{loader: l, ttl: ttl}
}

func (c *CollectionCache) valid() bool {
	return c.loaded && (c.ttl <= 0 || time.Since(c.fetched) < c.ttl)
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *CollectionCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.loaded = false
	c.mu.Unlock()
}

// Collection returns the cached collection, loading it when stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *CollectionCache) Collection(ctx context.Context) (content.Collection, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.loaded = true
	c.fetched = time.Now()
	return c.posts, nil
}
