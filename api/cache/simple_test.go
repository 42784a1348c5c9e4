package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupCache(t *testing.T) {
	cache := GetLookupCache()

	key := AccountKey("AMERICAS", "Faker", "KR1")
	assert.Equal(t, "account:americas:faker#kr1", key)

	assert.Nil(t, cache.Get(key))

	cache.Set(key, "some-account")
	assert.Equal(t, "some-account", cache.Get(key))

	// Expired entries behave like a miss.
	cache.SetWithTTL(key, "stale-account", -time.Second)
	assert.Nil(t, cache.Get(key))
}

func TestLookupCacheSingleton(t *testing.T) {
	assert.Same(t, GetLookupCache(), GetLookupCache())
}
