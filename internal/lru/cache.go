package lru

// DefaultCapacity is used when New is called with a non-positive capacity.
const DefaultCapacity = 1024

// Stats holds cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *node[K]
}

// Cache is a fixed-capacity LRU map. It is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	entries  map[K]*entry[K, V]
	order    list[K]
	capacity int

	hits, misses, evictions uint64
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(e.node)
	return e.value, true
}

// Set stores value under key, evicting the least recently used entries when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.moveToFront(e.node)
		return
	}
	c.evict(c.capacity - 1)
	c.entries[key] = &entry[K, V]{value: value, node: c.order.pushFront(key)}
}

// GetOrCreate returns the cached value for key or stores and returns the
// result of create.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := create()
	c.Set(key, v)
	return v
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(e.node)
	delete(c.entries, key)
	return true
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Clear removes all entries. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*entry[K, V])
	c.order.clear()
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// evict drops oldest entries until at most limit remain.
func (c *Cache[K, V]) evict(limit int) {
	for c.order.len > limit {
		key, ok := c.order.removeOldest()
		if !ok {
			return
		}
		delete(c.entries, key)
		c.evictions++
	}
}
