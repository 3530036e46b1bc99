package cache

import (
	"sync"
	"time"
)

// item holds a cached value and its absolute expiration; zero expiresAt
// means the entry never expires.
type item[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a goroutine-safe map-backed cache with per-entry TTL. There is
// no background janitor; expired entries are skipped on read and reclaimed
// by PurgeExpired.
type TTLCache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]item[V]
}

func NewTTLCache[K comparable, V any]() *TTLCache[K, V] {
	return &TTLCache[K, V]{items: make(map[K]item[V])}
}

// now is an indirection for test stubbing.
var now = time.Now

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	it, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if !it.expiresAt.IsZero() && now().After(it.expiresAt) {
		return zero, false
	}
	return it.value, true
}

func (c *TTLCache[K, V]) Set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = now().Add(ttl)
	}
	c.items[key] = item[V]{value: value, expiresAt: exp}
}

func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *TTLCache[K, V]) Has(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.items[key]
	if !ok {
		return false
	}
	return it.expiresAt.IsZero() || now().Before(it.expiresAt)
}

// Len counts only non-expired entries.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, it := range c.items {
		if it.expiresAt.IsZero() || now().Before(it.expiresAt) {
			count++
		}
	}
	return count
}

func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]item[V])
}

func (c *TTLCache[K, V]) PurgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	ts := now()
	for k, it := range c.items {
		if !it.expiresAt.IsZero() && ts.After(it.expiresAt) {
			delete(c.items, k)
		}
	}
}

var _ Cache[any, any] = (*TTLCache[any, any])(nil)
