package uikit

import "github.com/gogpu/uikit/asset"

// Handle aliases re-exported for callers that only import uikit.
type (
	TextureHandle = asset.TextureHandle
	FontHandle    = asset.FontHandle
	MeshHandle    = asset.MeshHandle
)

// Transform places an element on screen.
//
// X and Y are the pixel coordinates of the element's center, LocalZ is
// the stacking depth (larger values draw later, on top), and Width and
// Height are the pixel extents. Coordinates follow the screen-space
// convention of the draw pass: origin at the top left, Y growing down.
type Transform struct {
	X      float32
	Y      float32
	LocalZ float32
	Width  float32
	Height float32
}

// NewTransform returns a transform centered at (x, y) with the given
// extents at depth zero.
func NewTransform(x, y, width, height float32) Transform {
	return Transform{X: x, Y: y, Width: width, Height: height}
}

// WithZ returns a copy of t at depth z.
func (t Transform) WithZ(z float32) Transform {
	t.LocalZ = z
	return t
}

// Image is a textured quad filling its element's transform rectangle.
type Image struct {
	Texture TextureHandle
}
