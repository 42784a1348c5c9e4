package cache

import (
	"strings"
	"sync"
	"time"
)

// Account lookups hit the Riot rate limit hard during a rewind generation, so
// keep a tiny in-memory layer in front of them.
const accountLookupDuration = 5 * time.Minute

// LookupCache is a in-memory cache with small TTL for resolved riot accounts.
type LookupCache struct {
	entries map[string]lookupEntry
	mu      sync.RWMutex
}

type lookupEntry struct {
	value     any
	expiresAt time.Time
}

// Singleton.
var (
	lookupInstance *LookupCache
	lookupOnce     sync.Once
)

// GetLookupCache returns the instance of the lookup cache.
func GetLookupCache() *LookupCache {
	lookupOnce.Do(func() {
		lookupInstance = &LookupCache{
			entries: make(map[string]lookupEntry),
		}
	})

	return lookupInstance
}

// AccountKey builds the cache key of a riot id lookup.
func AccountKey(cluster, gameName, tagLine string) string {
	return "account:" + strings.ToLower(cluster) + ":" + strings.ToLower(gameName) + "#" + strings.ToLower(tagLine)
}

// Get returns the cached value for the key, or nil when missing or expired.
func (lc *LookupCache) Get(key string) any {
	lc.mu.RLock()
	entry, exists := lc.entries[key]
	lc.mu.RUnlock()

	if !exists {
		return nil
	}

	if time.Now().After(entry.expiresAt) {
		lc.mu.Lock()
		delete(lc.entries, key)
		lc.mu.Unlock()
		return nil
	}

	return entry.value
}

// Set stores a value with the default lookup TTL.
func (lc *LookupCache) Set(key string, value any) {
	lc.SetWithTTL(key, value, accountLookupDuration)
}

// SetWithTTL stores a value with an explicit TTL.
func (lc *LookupCache) SetWithTTL(key string, value any, ttl time.Duration) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.entries[key] = lookupEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}
