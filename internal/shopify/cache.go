package shopify

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

type cachedResponse struct {
	data    json.RawMessage
	expires time.Time
}

// responseCache is a bounded LRU of GraphQL data payloads with a TTL.
type responseCache struct {
	mu  sync.Mutex
	lru *lru.Cache
	ttl time.Duration
	now func() time.Time
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	return &responseCache{lru: lru.New(size), ttl: ttl, now: time.Now}
}

func (c *responseCache) get(key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	entry := v.(cachedResponse)
	if c.ttl > 0 && c.now().After(entry.expires) {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.data, true
}

func (c *responseCache) put(key string, data json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, cachedResponse{data: data, expires: c.now().Add(c.ttl)})
}

func (c *responseCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func cacheKey(query string, variables map[string]any) string {
	h := sha256.New()
	h.Write([]byte(query))
	h.Write([]byte{0})
	if variables != nil {
		b, _ := json.Marshal(variables)
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}
