package backend

import (
	"errors"

	"github.com/gogpu/uikit/asset"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrEmptyShader is returned when compiling an effect from empty source.
	ErrEmptyShader = errors.New("backend: empty shader source")
)

// VertexArgs is the per-draw constant buffer consumed by the UI quad
// shader: a screen-space projection vector plus the element's position and
// size. The layout matches the shader's uniform block.
type VertexArgs struct {
	// Proj is the projection vector (2/w, -2/h, -2, 1) derived from the
	// current screen dimensions.
	Proj [4]float32

	// Coord is the element's position in screen pixels.
	Coord [2]float32

	// Dimension is the element's size in screen pixels.
	Dimension [2]float32
}

// Effect is a compiled shader effect plus its current bindings.
//
// The draw pass drives an Effect strictly sequentially: update constants,
// bind vertex buffer and texture, draw, clear bindings. Implementations
// need not be safe for concurrent use.
type Effect interface {
	// UpdateConstants uploads the per-draw constant buffer.
	UpdateConstants(args VertexArgs)

	// BindVertexBuffer binds the vertex data for the next draw.
	BindVertexBuffer(vertices []asset.PosTexVertex)

	// BindTexture binds the texture sampled by the next draw.
	BindTexture(tex *asset.Texture)

	// Draw issues one draw over the given vertex range using the
	// current constants and bindings.
	Draw(slice asset.MeshSlice)

	// ClearBindings resets the vertex buffer and texture bindings.
	// Constants are left in place.
	ClearBindings()
}

// RenderBackend is the interface rendering backends implement.
// Backends are registered via Register and selected via Get or Default.
type RenderBackend interface {
	// Name returns the backend identifier (e.g. "software", "native").
	Name() string

	// Init initializes the backend.
	// It must be called before CompileEffect.
	Init() error

	// Close releases all backend resources.
	// The backend must not be used after Close.
	Close()

	// CompileEffect compiles the given WGSL source into an Effect with
	// alpha-blended output.
	CompileEffect(wgsl string) (Effect, error)
}
