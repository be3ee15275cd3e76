package cache

import (
	"sync"

	"github.com/amirasaad/badges/pkg/cache"
)

// MemoryCache implements ByteCache using in-memory storage.
// Entries never expire: cached assets are immutable for the process lifetime.
type MemoryCache struct {
	entries map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string][]byte),
	}
}

// Get retrieves bytes from cache
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, exists := c.entries[key]
	return value, exists
}

// Set stores a private copy of value
func (c *MemoryCache) Set(key string, value []byte) {
	owned := make([]byte, len(value))
	copy(owned, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = owned
}

// Delete removes an entry from cache
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ cache.ByteCache = (*MemoryCache)(nil)
