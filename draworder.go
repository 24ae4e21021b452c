package uikit

import "sort"

type zEntry struct {
	z       float32
	element Element
}

// DrawOrderCache maintains the back-to-front draw order of every
// element holding a transform. It is updated incrementally each frame
// by [DrawOrderCache.Maintain] and read by the draw pass, which emits
// elements in cached order.
//
// The cache holds exactly the elements that currently have a transform;
// entries are sorted by depth, largest first, so the pass draws deepest
// elements first and shallow ones over them.
type DrawOrderCache struct {
	members map[Element]struct{}
	ordered []zEntry
}

// NewDrawOrderCache creates an empty cache.
func NewDrawOrderCache() *DrawOrderCache {
	return &DrawOrderCache{members: make(map[Element]struct{})}
}

// Len returns the number of cached elements.
func (c *DrawOrderCache) Len() int { return len(c.ordered) }

// Each calls fn for each cached element in draw order, deepest first.
func (c *DrawOrderCache) Each(fn func(Element, float32)) {
	for _, e := range c.ordered {
		fn(e.element, e.z)
	}
}

// Contains reports whether e is cached.
func (c *DrawOrderCache) Contains(e Element) bool {
	_, ok := c.members[e]
	return ok
}

// Maintain brings the cache in sync with the world's transforms.
//
// It prunes entries whose element lost its transform, refreshes the
// depth of survivors, inserts elements that gained a transform at their
// sorted position, and finally re-sorts, so depth changes made between
// frames are reflected. The sort is stable: elements at equal depth
// keep their relative order across frames.
func (c *DrawOrderCache) Maintain(w *World) {
	// Prune entries whose transform is gone.
	kept := c.ordered[:0]
	for _, entry := range c.ordered {
		if _, ok := w.Transform(entry.element); ok {
			kept = append(kept, entry)
		}
	}
	c.ordered = kept

	// Refresh depths of surviving entries.
	for i := range c.ordered {
		t, _ := w.Transform(c.ordered[i].element)
		c.ordered[i].z = t.LocalZ
	}

	// Collect elements that gained a transform since last frame.
	var added []zEntry
	w.EachTransform(func(e Element, t *Transform) {
		if _, ok := c.members[e]; !ok {
			added = append(added, zEntry{z: t.LocalZ, element: e})
		}
	})

	// Insert each new entry before the first cached entry it is not
	// deeper than, keeping the slice descending.
	for _, entry := range added {
		pos := len(c.ordered)
		for i, cached := range c.ordered {
			if entry.z >= cached.z {
				pos = i
				break
			}
		}
		c.ordered = append(c.ordered, zEntry{})
		copy(c.ordered[pos+1:], c.ordered[pos:])
		c.ordered[pos] = entry
	}

	// Rebuild membership from the surviving order.
	clear(c.members)
	for _, entry := range c.ordered {
		c.members[entry.element] = struct{}{}
	}

	// Depths may have moved arbitrarily; restore the descending order.
	// NaN depths compare as equal to everything and keep their position.
	sort.SliceStable(c.ordered, func(i, j int) bool {
		return c.ordered[i].z > c.ordered[j].z
	})
}
