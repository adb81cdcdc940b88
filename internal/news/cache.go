package news

import (
	"context"
	"sync"
	"time"
)

// CachedSource serves repeated requests from memory until the TTL expires.
// Safe for concurrent use.
type CachedSource struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	items     []Item
	fetchedAt time.Time
	limit     int
}

// NewCachedSource wraps source with a TTL cache.
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, ttl: ttl, now: time.Now}
}

func (c *CachedSource) Name() string { return c.source.Name() }

// Fetch returns cached items when they are fresh and were fetched with at least
// limit entries requested; otherwise it refetches. Errors are not cached.
func (c *CachedSource) Fetch(ctx context.Context, limit int) ([]Item, error) {
	limit = normalizeLimit(limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items != nil && limit <= c.limit && c.now().Sub(c.fetchedAt) < c.ttl {
		return head(c.items, limit), nil
	}

	items, err := c.source.Fetch(ctx, limit)
	if err != nil {
		return nil, err
	}
	c.items = items
	c.limit = limit
	c.fetchedAt = c.now()
	return head(items, limit), nil
}

// Invalidate drops the cached items.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

func head(items []Item, n int) []Item {
	if n > len(items) {
		n = len(items)
	}
	out := make([]Item, n)
	copy(out, items[:n])
	return out
}
