// Package cache memoizes worksheet reads for a short time.
//
// Entries expire a fixed TTL after insertion. Every mutation of the backing
// workbook calls Clear, which drops all entries at once, so a write touching
// two worksheets is never observed half-applied through a stale sibling.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/light-bringer/smt-console/internal/pkg/table"
)

const (
	// DefaultTTL is the lifetime of a cached table.
	DefaultTTL = 5 * time.Second

	maxEntries = 256
)

// Cache is a TTL read cache keyed by (worksheet name, schema).
// A nil *Cache, or one built with ttl <= 0, caches nothing.
//
// Every Clear starts a new generation. A reader takes the generation before
// it reads the backend and stores its result with PutAt, which drops the
// table when a Clear happened in between.
type Cache struct {
	lru *expirable.LRU[string, *table.Table]
	ttl time.Duration

	mu  sync.Mutex
	gen uint64
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	return &Cache{
		lru: expirable.NewLRU[string, *table.Table](maxEntries, nil, ttl),
		ttl: ttl,
	}
}

// Key builds the cache key of a worksheet read.
func Key(name string, schema table.Schema) string {
	return name + "\x1e" + schema.Key()
}

// TTL returns the configured entry lifetime, 0 when disabled.
func (c *Cache) TTL() time.Duration {
	if c == nil {
		return 0
	}
	return c.ttl
}

// Get returns a copy of the cached table.
func (c *Cache) Get(name string, schema table.Schema) (*table.Table, bool) {
	if c == nil || c.lru == nil {
		return nil, false
	}
	t, ok := c.lru.Get(Key(name, schema))
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Generation returns the current generation.
func (c *Cache) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// PutAt stores a copy of t read during generation gen. It reports false and
// stores nothing when the cache was cleared since.
func (c *Cache) PutAt(gen uint64, name string, schema table.Schema, t *table.Table) bool {
	if c == nil || c.lru == nil || t == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.lru.Add(Key(name, schema), t.Clone())
	return true
}

// Clear drops every entry and starts a new generation.
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.lru != nil {
		c.lru.Purge()
	}
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
