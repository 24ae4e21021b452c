package backend

import (
	"testing"

	"github.com/gogpu/uikit/asset"
)

func newTestTexture(w, h int, rgba [4]float32) *asset.Texture {
	pixels := make([]float32, w*h*4)
	for i := 0; i < w*h; i++ {
		copy(pixels[i*4:], rgba[:])
	}
	return &asset.Texture{
		Meta:   asset.TextureMeta{Width: w, Height: h, Format: asset.TextureFormatRGBA32Float},
		Pixels: pixels,
	}
}

func newTestEffect(t *testing.T, w, h int) (*SoftwareBackend, Effect) {
	t.Helper()
	b := NewSoftwareBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	effect, err := b.CompileEffect("// quad shader")
	if err != nil {
		t.Fatalf("CompileEffect failed: %v", err)
	}
	return b, effect
}

func TestSoftwareCompileRequiresInit(t *testing.T) {
	b := NewSoftwareBackend(8, 8)
	if _, err := b.CompileEffect("src"); err != ErrNotInitialized {
		t.Errorf("CompileEffect before Init = %v, want ErrNotInitialized", err)
	}
}

func TestSoftwareCompileRejectsEmptyShader(t *testing.T) {
	b := NewSoftwareBackend(8, 8)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := b.CompileEffect(""); err != ErrEmptyShader {
		t.Errorf("CompileEffect(\"\") = %v, want ErrEmptyShader", err)
	}
}

func TestSoftwareDrawFillsRect(t *testing.T) {
	b, effect := newTestEffect(t, 16, 16)

	quad := asset.UnitQuad()
	buf, _ := quad.Buffer()

	effect.UpdateConstants(VertexArgs{
		Proj:      [4]float32{2.0 / 16, -2.0 / 16, -2, 1},
		Coord:     [2]float32{8, 8},
		Dimension: [2]float32{8, 8},
	})
	effect.BindVertexBuffer(buf)
	effect.BindTexture(newTestTexture(2, 2, [4]float32{1, 0, 0, 1}))
	effect.Draw(quad.Slice())
	effect.ClearBindings()

	if got := b.Target().At(5, 5); got != [4]float32{1, 0, 0, 1} {
		t.Errorf("pixel inside quad = %v, want opaque red", got)
	}
	if got := b.Target().At(1, 1); got != [4]float32{} {
		t.Errorf("pixel outside quad = %v, want transparent", got)
	}
	if got := b.Target().At(12, 12); got != [4]float32{} {
		t.Errorf("pixel past quad = %v, want transparent", got)
	}
}

func TestSoftwareDrawWithoutBindingsIsNoop(t *testing.T) {
	b, effect := newTestEffect(t, 8, 8)

	effect.UpdateConstants(VertexArgs{Coord: [2]float32{0, 0}, Dimension: [2]float32{8, 8}})
	// No texture or vertex buffer bound.
	effect.Draw(asset.MeshSlice{Start: 0, End: 6})

	if got := b.Target().At(2, 2); got != [4]float32{} {
		t.Errorf("draw without bindings wrote %v", got)
	}
}

func TestSoftwareDrawBlendsAlpha(t *testing.T) {
	b, effect := newTestEffect(t, 8, 8)
	quad := asset.UnitQuad()
	buf, _ := quad.Buffer()

	effect.UpdateConstants(VertexArgs{Coord: [2]float32{4, 4}, Dimension: [2]float32{8, 8}})
	effect.BindVertexBuffer(buf)
	effect.BindTexture(newTestTexture(1, 1, [4]float32{0, 0, 1, 1}))
	effect.Draw(quad.Slice())
	effect.ClearBindings()

	// Half-transparent red over opaque blue.
	effect.BindVertexBuffer(buf)
	effect.BindTexture(newTestTexture(1, 1, [4]float32{1, 0, 0, 0.5}))
	effect.Draw(quad.Slice())
	effect.ClearBindings()

	got := b.Target().At(4, 4)
	if got[0] != 0.5 || got[2] != 0.5 {
		t.Errorf("blended pixel = %v, want half red over half blue", got)
	}
}

func TestSoftwareDrawClipsToTarget(t *testing.T) {
	b, effect := newTestEffect(t, 4, 4)
	quad := asset.UnitQuad()
	buf, _ := quad.Buffer()

	// Quad extends past the framebuffer on all sides of the corner.
	effect.UpdateConstants(VertexArgs{Coord: [2]float32{2, 2}, Dimension: [2]float32{8, 8}})
	effect.BindVertexBuffer(buf)
	effect.BindTexture(newTestTexture(1, 1, [4]float32{0, 1, 0, 1}))
	effect.Draw(quad.Slice())

	if got := b.Target().At(3, 3); got != [4]float32{0, 1, 0, 1} {
		t.Errorf("in-bounds pixel = %v, want green", got)
	}
	// No panic for out-of-bounds writes is the real assertion.
	if got := b.Target().At(7, 7); got != [4]float32{} {
		t.Errorf("out-of-bounds read = %v, want zeros", got)
	}
}

func TestRegistry(t *testing.T) {
	if !IsRegistered(BackendSoftware) {
		t.Fatal("software backend not registered on import")
	}

	b := Get(BackendSoftware)
	if b == nil || b.Name() != BackendSoftware {
		t.Fatalf("Get(software) = %v", b)
	}

	if Get("nonexistent") != nil {
		t.Error("Get of unknown backend should return nil")
	}

	d := Default()
	if d == nil {
		t.Fatal("Default() = nil with software registered")
	}
}

func TestRegistryPrefersNative(t *testing.T) {
	stub := &SoftwareBackend{target: NewFramebuffer(1, 1)}
	Register(BackendNative, func() RenderBackend { return stub })
	defer Unregister(BackendNative)

	if d := Default(); d != stub {
		t.Errorf("Default() = %v, want the registered native backend", d)
	}
}

func TestInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault failed: %v", err)
	}
	if _, err := b.CompileEffect("src"); err != nil {
		t.Errorf("CompileEffect after InitDefault failed: %v", err)
	}
	b.Close()
}
