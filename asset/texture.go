package asset

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TextureFormat represents the pixel format of an uploaded texture.
type TextureFormat uint8

const (
	// TextureFormatRGBA32Float is 4×32-bit floating point RGBA.
	// This is the format the text rasterizer uploads.
	TextureFormatRGBA32Float TextureFormat = iota

	// TextureFormatRGBA8 is the standard RGBA format with 8 bits per channel.
	TextureFormatRGBA8

	// TextureFormatR8 is single-channel 8-bit format, used for masks.
	TextureFormatR8
)

// String returns a human-readable name for the format.
func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA32Float:
		return "RGBA32Float"
	case TextureFormatRGBA8:
		return "RGBA8"
	case TextureFormatR8:
		return "R8"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Channels returns the number of channels per pixel for the format.
func (f TextureFormat) Channels() int {
	switch f {
	case TextureFormatRGBA32Float, TextureFormatRGBA8:
		return 4
	case TextureFormatR8:
		return 1
	default:
		return 4
	}
}

// ToWGPUFormat converts to a wgpu gputypes.TextureFormat for GPU upload.
func (f TextureFormat) ToWGPUFormat() gputypes.TextureFormat {
	switch f {
	case TextureFormatRGBA32Float:
		return gputypes.TextureFormatRGBA32Float
	case TextureFormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case TextureFormatR8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// DefaultTextureUsage is the usage for textures sampled by the UI pass.
const DefaultTextureUsage = gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// TextureMeta describes an uploaded texture.
type TextureMeta struct {
	// Width and Height are the texture dimensions in texels.
	Width, Height int

	// Format is the pixel format of the data.
	Format TextureFormat

	// MipLevels is the number of mip levels. The UI pipeline uploads
	// non-mipmapped textures, so this is normally 1.
	MipLevels int

	// Dynamic marks textures whose contents are rewritten every frame.
	// Text textures are not dynamic; they are replaced wholesale.
	Dynamic bool

	// Usage specifies how the GPU may use the texture.
	Usage gputypes.TextureUsage
}

// Extent returns the texture dimensions as a wgpu extent.
func (m TextureMeta) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(max(m.Width, 0)),
		Height:             uint32(max(m.Height, 0)),
		DepthOrArrayLayers: 1,
	}
}

// Texture is a CPU-side texture: pixel data plus its metadata.
// For TextureFormatRGBA32Float, Pixels holds Width*Height*4 values in
// row-major RGBA order. A zero-area texture has an empty Pixels slice.
type Texture struct {
	Meta   TextureMeta
	Pixels []float32
}

// At returns the RGBA value at texel (x, y).
// It returns zeros for coordinates outside the texture.
func (t *Texture) At(x, y int) [4]float32 {
	if x < 0 || y < 0 || x >= t.Meta.Width || y >= t.Meta.Height {
		return [4]float32{}
	}
	i := (y*t.Meta.Width + x) * 4
	return [4]float32{t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]}
}

// TextureHandle refers to a texture in a TextureStore.
type TextureHandle = Handle[*Texture]

// TextureStore holds uploaded textures.
//
// LoadFromData is the upload entry point used by the text rasterizer: it
// validates the pixel slice against the metadata and returns a handle that
// resolves immediately.
type TextureStore struct {
	Store[*Texture]
}

// NewTextureStore creates an empty texture store.
func NewTextureStore() *TextureStore {
	return &TextureStore{Store: Store[*Texture]{entries: make(map[uint32]*Texture)}}
}

// LoadFromData registers a texture built from pixels and meta.
//
// A short pixel slice is padded with transparent black so a degenerate
// upload can never read out of bounds; this keeps zero-area and clipped
// uploads valid rather than erroneous.
func (s *TextureStore) LoadFromData(pixels []float32, meta TextureMeta) TextureHandle {
	if meta.MipLevels == 0 {
		meta.MipLevels = 1
	}
	if meta.Usage == 0 {
		meta.Usage = DefaultTextureUsage
	}
	want := max(meta.Width, 0) * max(meta.Height, 0) * meta.Format.Channels()
	if len(pixels) < want {
		padded := make([]float32, want)
		copy(padded, pixels)
		pixels = padded
	}
	return s.Store.LoadFromData(&Texture{Meta: meta, Pixels: pixels})
}
