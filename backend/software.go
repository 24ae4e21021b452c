package backend

import (
	"github.com/gogpu/uikit/asset"
)

// defaultFramebufferSize is used when the software backend is constructed
// through the registry without explicit dimensions.
const (
	defaultFramebufferWidth  = 800
	defaultFramebufferHeight = 600
)

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return NewSoftwareBackend(defaultFramebufferWidth, defaultFramebufferHeight)
	})
}

// Framebuffer is an in-memory float RGBA render target.
type Framebuffer struct {
	width, height int
	pixels        []float32
}

// NewFramebuffer creates a transparent-black framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]float32, width*height*4),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// At returns the RGBA value at (x, y), or zeros outside the target.
func (f *Framebuffer) At(x, y int) [4]float32 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return [4]float32{}
	}
	i := (y*f.width + x) * 4
	return [4]float32{f.pixels[i], f.pixels[i+1], f.pixels[i+2], f.pixels[i+3]}
}

// Clear resets every pixel to transparent black.
func (f *Framebuffer) Clear() {
	for i := range f.pixels {
		f.pixels[i] = 0
	}
}

// blend composites src over the pixel at (x, y).
func (f *Framebuffer) blend(x, y int, src [4]float32) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	a := src[3]
	inv := 1 - a
	f.pixels[i] = src[0]*a + f.pixels[i]*inv
	f.pixels[i+1] = src[1]*a + f.pixels[i+1]*inv
	f.pixels[i+2] = src[2]*a + f.pixels[i+2]*inv
	f.pixels[i+3] = a + f.pixels[i+3]*inv
}

// SoftwareBackend is a CPU compositing backend. It rasterizes each quad
// draw directly into its framebuffer with source-over alpha blending and
// nearest-neighbor texture sampling. It is the always-available fallback
// and the reference implementation the tests run against.
type SoftwareBackend struct {
	initialized bool
	target      *Framebuffer
}

// NewSoftwareBackend creates a software backend with a target of the given
// dimensions.
func NewSoftwareBackend(width, height int) *SoftwareBackend {
	return &SoftwareBackend{target: NewFramebuffer(width, height)}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string { return BackendSoftware }

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// Resize replaces the framebuffer with one of the given dimensions.
func (b *SoftwareBackend) Resize(width, height int) {
	b.target = NewFramebuffer(width, height)
}

// Target returns the framebuffer draws composite into.
func (b *SoftwareBackend) Target() *Framebuffer { return b.target }

// CompileEffect returns an effect drawing into the backend's framebuffer.
// The WGSL source is accepted for interface parity but not executed; the
// software path implements the quad shader's semantics directly.
func (b *SoftwareBackend) CompileEffect(wgsl string) (Effect, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if wgsl == "" {
		return nil, ErrEmptyShader
	}
	return &softwareEffect{backend: b}, nil
}

// softwareEffect implements Effect against the software framebuffer.
type softwareEffect struct {
	backend *SoftwareBackend
	args    VertexArgs
	vbuf    []asset.PosTexVertex
	texture *asset.Texture
}

func (e *softwareEffect) UpdateConstants(args VertexArgs) { e.args = args }

func (e *softwareEffect) BindVertexBuffer(vertices []asset.PosTexVertex) { e.vbuf = vertices }

func (e *softwareEffect) BindTexture(tex *asset.Texture) { e.texture = tex }

func (e *softwareEffect) ClearBindings() {
	e.vbuf = nil
	e.texture = nil
}

// Draw composites one textured quad into the framebuffer. The unit-quad
// vertex range is interpreted as the axis-aligned rectangle centered on
// args.Coord spanning args.Dimension, which is what the quad vertex shader
// produces for every UI element.
func (e *softwareEffect) Draw(slice asset.MeshSlice) {
	if e.texture == nil || len(e.vbuf) == 0 || slice.Len() == 0 {
		return
	}
	target := e.backend.target

	w := int(e.args.Dimension[0])
	h := int(e.args.Dimension[1])
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(e.args.Coord[0] - e.args.Dimension[0]/2)
	y0 := int(e.args.Coord[1] - e.args.Dimension[1]/2)

	tw := e.texture.Meta.Width
	th := e.texture.Meta.Height
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			// Nearest-neighbor sample at the texel matching this
			// fragment's quad-local UV.
			var texel [4]float32
			if tw > 0 && th > 0 {
				tx := dx * tw / w
				ty := dy * th / h
				texel = e.texture.At(tx, ty)
			}
			if texel[3] == 0 {
				continue
			}
			target.blend(x0+dx, y0+dy, texel)
		}
	}
}
