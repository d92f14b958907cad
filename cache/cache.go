// Package cache provides a small generic LRU cache.
//
// The cache backs per-window resources that are expensive to rebuild and
// cheap to keep, such as rasterized glyph masks. It is owned by a single
// window and is not safe for concurrent use.
package cache

// DefaultCapacity is the capacity used when New is given a non-positive one.
const DefaultCapacity = 1024

// LRU is a fixed-capacity cache that evicts the least recently used entry.
type LRU[K comparable, V any] struct {
	entries  map[K]*entry[K, V]
	order    recency[K, V]
	capacity int

	hits, misses, evictions uint64

	// OnEvict, when set, is called with every entry dropped to make room.
	OnEvict func(K, V)
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 when the cache was never read.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*entry[K, V], capacity),
		capacity: capacity,
	}
}

// Get returns the cached value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(e)
	return e.value, true
}

// Put stores value under key, evicting the oldest entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.moveToFront(e)
		return
	}
	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	e := &entry[K, V]{key: key, value: value}
	c.entries[key] = e
	c.order.pushFront(e)
}

// GetOrCreate returns the cached value for key, calling create on a miss
// and storing its result.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := create()
	c.Put(key, v)
	return v
}

// Delete removes key from the cache.
func (c *LRU[K, V]) Delete(key K) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	c.order.unlink(e)
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int { return len(c.entries) }

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int { return c.capacity }

// Clear drops every entry without calling OnEvict. Counters are kept.
func (c *LRU[K, V]) Clear() {
	clear(c.entries)
	c.order = recency[K, V]{}
}

// Stats returns a snapshot of the counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

func (c *LRU[K, V]) evictOldest() {
	e := c.order.tail
	if e == nil {
		return
	}
	c.order.unlink(e)
	delete(c.entries, e.key)
	c.evictions++
	if c.OnEvict != nil {
		c.OnEvict(e.key, e.value)
	}
}
