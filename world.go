package uikit

// Element is an opaque handle naming one UI entity.
// Elements are allocated by [World.NewElement] and may be reused after
// [World.Destroy]; holders of a destroyed Element must not keep using it.
type Element uint32

// storage is a dense component arena: components live in a contiguous
// slice, with an index map from Element to slot. Iteration order is the
// slice order, which is deterministic between mutations.
type storage[T any] struct {
	index map[Element]int
	elems []Element
	items []T
}

func newStorage[T any]() *storage[T] {
	return &storage[T]{index: make(map[Element]int)}
}

func (s *storage[T]) set(e Element, v T) {
	if i, ok := s.index[e]; ok {
		s.items[i] = v
		return
	}
	s.index[e] = len(s.items)
	s.elems = append(s.elems, e)
	s.items = append(s.items, v)
}

func (s *storage[T]) get(e Element) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.items[i], true
}

func (s *storage[T]) remove(e Element) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.items) - 1
	if i != last {
		s.items[i] = s.items[last]
		s.elems[i] = s.elems[last]
		s.index[s.elems[i]] = i
	}
	s.items = s.items[:last]
	s.elems = s.elems[:last]
	delete(s.index, e)
}

func (s *storage[T]) each(fn func(Element, *T)) {
	for i, e := range s.elems {
		fn(e, &s.items[i])
	}
}

func (s *storage[T]) len() int { return len(s.items) }

// World owns the UI components of all live elements.
//
// Layout code mutates transforms in place between frames; the frame
// passes read them. A World is not safe for concurrent mutation; the
// scheduler must run the maintenance, rasterization, and emission passes
// of one frame without overlap.
type World struct {
	next Element
	free []Element

	transforms *storage[Transform]
	images     *storage[Image]
	texts      *storage[*Text]
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		transforms: newStorage[Transform](),
		images:     newStorage[Image](),
		texts:      newStorage[*Text](),
	}
}

// NewElement allocates an element handle, reusing destroyed ones.
func (w *World) NewElement() Element {
	if n := len(w.free); n > 0 {
		e := w.free[n-1]
		w.free = w.free[:n-1]
		return e
	}
	w.next++
	return w.next
}

// Destroy removes all components of e and recycles its handle.
func (w *World) Destroy(e Element) {
	w.transforms.remove(e)
	w.images.remove(e)
	w.texts.remove(e)
	w.free = append(w.free, e)
}

// SetTransform attaches or replaces the transform of e.
// An element with a transform is visible to the draw-order cache.
func (w *World) SetTransform(e Element, t Transform) { w.transforms.set(e, t) }

// Transform returns a mutable pointer to the transform of e.
// The pointer is valid until the next transform insertion or removal.
func (w *World) Transform(e Element) (*Transform, bool) { return w.transforms.get(e) }

// RemoveTransform detaches the transform of e, hiding it from the
// draw-order cache on the next maintenance pass.
func (w *World) RemoveTransform(e Element) { w.transforms.remove(e) }

// EachTransform calls fn for every element holding a transform.
// fn must not add or remove transforms.
func (w *World) EachTransform(fn func(Element, *Transform)) { w.transforms.each(fn) }

// TransformCount returns the number of elements holding a transform.
func (w *World) TransformCount() int { return w.transforms.len() }

// SetImage attaches or replaces the image of e.
func (w *World) SetImage(e Element, img Image) { w.images.set(e, img) }

// Image returns the image of e.
func (w *World) Image(e Element) (*Image, bool) { return w.images.get(e) }

// RemoveImage detaches the image of e.
func (w *World) RemoveImage(e Element) { w.images.remove(e) }

// SetText attaches or replaces the text of e.
func (w *World) SetText(e Element, t *Text) { w.texts.set(e, t) }

// Text returns the text of e.
func (w *World) Text(e Element) (*Text, bool) {
	t, ok := w.texts.get(e)
	if !ok {
		return nil, false
	}
	return *t, true
}

// RemoveText detaches the text of e.
func (w *World) RemoveText(e Element) { w.texts.remove(e) }

// EachText calls fn for every element holding a text component.
// fn must not add or remove texts.
func (w *World) EachText(fn func(Element, *Text)) {
	w.texts.each(func(e Element, t **Text) { fn(e, *t) })
}
