// Package cache provides an in-process cache for property lookups.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"propertyhub/internal/model"
)

// PropertyCache caches properties by slug. Every entry has cost 1, so
// maxItems bounds the number of cached properties.
type PropertyCache struct {
	c   *ristretto.Cache[string, model.Property]
	ttl time.Duration
}

// NewPropertyCache creates a ristretto-backed property cache
func NewPropertyCache(maxItems int64, ttl time.Duration) (*PropertyCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, model.Property]{
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &PropertyCache{c: c, ttl: ttl}, nil
}

// Get returns a copy of the cached property
func (c *PropertyCache) Get(slug string) (*model.Property, bool) {
	p, ok := c.c.Get(slug)
	if !ok {
		return nil, false
	}
	return &p, true
}

// Set caches a copy of p. Writes are applied asynchronously.
func (c *PropertyCache) Set(p *model.Property) {
	c.c.SetWithTTL(p.Slug, *p, 1, c.ttl)
}

// Wait blocks until pending writes are applied
func (c *PropertyCache) Wait() {
	c.c.Wait()
}

// Close releases the cache
func (c *PropertyCache) Close() {
	c.c.Close()
}
