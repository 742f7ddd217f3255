package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   lruList[K]
	limit   int
	onEvict func(K, V)

	hits   uint64
	misses uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache with the given limit. A limit of 0 means unlimited.
// onEvict, if not nil, is called with the cache lock held for every entry
// removed by eviction or Purge.
func New[K comparable, V any](limit int, onEvict func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		limit:   limit,
		onEvict: onEvict,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(e.node)
	return e.value, true
}

// Set stores value under key, replacing any previous value without calling
// onEvict for it.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs under the cache lock, so it is called at most once per
// missing key. Errors are returned and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(e.node)
		return e.value, nil
	}
	c.misses++

	value, err := create()
	if err != nil {
		return value, err
	}
	c.set(key, value)
	return value, nil
}

// set stores a value. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.MoveToFront(e.node)
		return
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.PushFront(key)}

	for c.limit > 0 && len(c.entries) > c.limit {
		oldest, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		c.evict(oldest)
	}
}

// evict drops key from the map. Its list node must already be unlinked.
func (c *Cache[K, V]) evict(key K) {
	e := c.entries[key]
	delete(c.entries, key)
	if c.onEvict != nil {
		c.onEvict(key, e.value)
	}
}

// Delete removes key without calling onEvict. It reports whether key was
// present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(e.node)
	delete(c.entries, key)
	return true
}

// Purge evicts every entry, oldest first.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		key, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		c.evict(key)
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}

// Stats contains cache statistics.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}
