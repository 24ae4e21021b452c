package font

import "sync"

// DefaultMaskCacheCapacity is the default number of cached glyph masks.
const DefaultMaskCacheCapacity = 1024

// lruNode is a node in a doubly-linked LRU list.
// The node stores its key for O(1) deletion from the parent map.
type lruNode[K comparable] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList is a doubly-linked list for LRU eviction.
// The list is not thread-safe; callers must handle synchronization.
// The head is the most recently used, the tail the least.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

func (l *lruList[K]) Len() int { return l.len }

// PushFront adds a new node at the front and returns it.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// MoveToFront marks an existing node most recently used.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// RemoveOldest removes and returns the key of the least recently used node.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}

// maskCache is a thread-safe LRU cache for rasterized glyph masks.
// Entries are keyed by (rune, quantized size); see glyphKey.
type maskCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[glyphKey]*maskCacheEntry
	lru      lruList[glyphKey]
}

type maskCacheEntry struct {
	mask *glyphMask
	node *lruNode[glyphKey]
}

func newMaskCache(capacity int) *maskCache {
	if capacity <= 0 {
		capacity = DefaultMaskCacheCapacity
	}
	return &maskCache{
		capacity: capacity,
		entries:  make(map[glyphKey]*maskCacheEntry),
	}
}

// get retrieves a cached mask and marks it recently used.
func (c *maskCache) get(key glyphKey) (*glyphMask, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(entry.node)
	return entry.mask, true
}

// put stores a mask, evicting the least recently used entries past capacity.
func (c *maskCache) put(key glyphKey, mask *glyphMask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		existing.mask = mask
		c.lru.MoveToFront(existing.node)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
	c.entries[key] = &maskCacheEntry{mask: mask, node: c.lru.PushFront(key)}
}

// len returns the number of cached masks.
func (c *maskCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
