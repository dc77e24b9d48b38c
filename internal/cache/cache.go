// Package cache provides a bounded LRU cache whose evicted values are
// handed to a callback, so that values holding resources (font faces,
// decoded glyph data) can be closed when they fall out.
//
//	c := cache.New[float32, font.Face](16, func(_ float32, f font.Face) { f.Close() })
//	face, err := c.GetOrCreate(12, newFace)
//
// Cache is safe for concurrent use and must not be copied.
package cache

import "sync"

// Cache is a thread-safe LRU cache with a hard entry limit.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   lruList[K, V]
	limit   int
	onEvict func(K, V)
}

// New creates a cache holding at most limit entries; 0 means unlimited.
// onEvict, if non-nil, is called without the lock held for every value
// that leaves the cache through eviction or Clear.
func New[K comparable, V any](limit int, onEvict func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		limit:   limit,
		onEvict: onEvict,
	}
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(e)
	return e.value, true
}

// GetOrCreate returns the cached value for key, or calls create under the
// lock and caches its result. Errors are returned and not cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.order.moveToFront(e)
		c.mu.Unlock()
		return e.value, nil
	}

	v, err := create()
	if err != nil {
		c.mu.Unlock()
		return v, err
	}
	evicted := c.insert(key, v)
	c.mu.Unlock()

	c.evict(evicted)
	return v, nil
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	var all []*entry[K, V]
	for e := c.order.popBack(); e != nil; e = c.order.popBack() {
		all = append(all, e)
	}
	clear(c.entries)
	c.mu.Unlock()

	c.evict(all)
}

// insert adds a new entry and returns whatever it pushed out. Caller
// holds c.mu.
func (c *Cache[K, V]) insert(key K, v V) []*entry[K, V] {
	e := &entry[K, V]{key: key, value: v}
	c.entries[key] = e
	c.order.pushFront(e)

	var out []*entry[K, V]
	for c.limit > 0 && c.order.len > c.limit {
		old := c.order.popBack()
		delete(c.entries, old.key)
		out = append(out, old)
	}
	return out
}

func (c *Cache[K, V]) evict(es []*entry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range es {
		c.onEvict(e.key, e.value)
	}
}
