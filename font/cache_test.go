package font

import "testing"

func key(r rune) glyphKey { return glyphKey{r: r, size: 24 * 64} }

func TestMaskCachePutGet(t *testing.T) {
	c := newMaskCache(8)

	if _, ok := c.get(key('a')); ok {
		t.Error("get on empty cache reported a hit")
	}

	m := &glyphMask{bearingX: 1}
	c.put(key('a'), m)

	got, ok := c.get(key('a'))
	if !ok || got != m {
		t.Errorf("get() = %v, %v, want cached mask", got, ok)
	}
}

func TestMaskCacheEvictsOldest(t *testing.T) {
	c := newMaskCache(2)
	c.put(key('a'), &glyphMask{})
	c.put(key('b'), &glyphMask{})

	// Touch 'a' so 'b' becomes the eviction candidate.
	c.get(key('a'))
	c.put(key('c'), &glyphMask{})

	if _, ok := c.get(key('b')); ok {
		t.Error("least recently used entry 'b' survived eviction")
	}
	if _, ok := c.get(key('a')); !ok {
		t.Error("recently used entry 'a' was evicted")
	}
	if c.len() != 2 {
		t.Errorf("len() = %d, want 2", c.len())
	}
}

func TestMaskCacheUpdateExisting(t *testing.T) {
	c := newMaskCache(2)
	c.put(key('a'), &glyphMask{bearingX: 1})
	c.put(key('a'), &glyphMask{bearingX: 2})

	if c.len() != 1 {
		t.Errorf("len() = %d after double put, want 1", c.len())
	}
	got, _ := c.get(key('a'))
	if got.bearingX != 2 {
		t.Errorf("bearingX = %d, want updated value 2", got.bearingX)
	}
}

func TestMaskCacheDefaultCapacity(t *testing.T) {
	c := newMaskCache(0)
	if c.capacity != DefaultMaskCacheCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultMaskCacheCapacity)
	}
}
