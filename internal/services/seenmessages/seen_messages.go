package seenmessages

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache remembers message IDs for a while so redelivered webhook events are handled once.
type Cache struct {
	cache *cache.Cache
}

// New creates a cache that forgets message IDs after ttl.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// FirstSeen records messageID and reports whether it had not been recorded before.
// An empty ID is always reported as first seen and never recorded.
func (c *Cache) FirstSeen(messageID string) bool {
	if messageID == "" {
		return true
	}
	// Add fails when the key is already present and unexpired.
	return c.cache.Add(messageID, struct{}{}, cache.DefaultExpiration) == nil
}

// Len returns the number of remembered message IDs, expired or not.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
