// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides GPU glue for the UI draw pass using gogpu/wgpu.
//
// The backend receives a HAL device and queue from the host application and
// compiles the UI quad shader from WGSL to SPIR-V via gogpu/naga. Draw
// submission records validated state; actual command encoding is wired up
// when the HAL render pass API is available, matching the rest of the
// gogpu stack.
package native

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/uikit/asset"
	"github.com/gogpu/uikit/backend"
)

// Native backend errors.
var (
	// ErrNilDevice is returned when constructing a backend without a device or queue.
	ErrNilDevice = errors.New("native: device and queue are required")

	// ErrNoHALAccess is returned when a device provider does not expose
	// the raw wgpu/hal device and queue.
	ErrNoHALAccess = errors.New("native: device provider does not expose HAL access")
)

// Backend is a GPU rendering backend backed by gogpu/wgpu.
//
// The device and queue are injected; the backend never creates its own.
type Backend struct {
	mu          sync.Mutex
	device      hal.Device
	queue       hal.Queue
	initialized bool
	modules     []hal.ShaderModule
}

// New creates a native backend from an injected HAL device and queue.
func New(device hal.Device, queue hal.Queue) (*Backend, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Backend{device: device, queue: queue}, nil
}

// halProvider is implemented by device providers that expose raw wgpu/hal
// access alongside the gpucontext interfaces.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewFromProvider creates a native backend from a host device provider.
//
// The provider must additionally expose HalDevice() and HalQueue() returning
// wgpu/hal types; gpucontext's own Device and Queue interfaces are too
// abstract to record commands against. A provider without HAL access (such
// as [backend.NullDeviceHandle]) yields ErrNoHALAccess.
func NewFromProvider(provider backend.DeviceHandle) (*Backend, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not a hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not a hal.Queue", ErrNoHALAccess)
	}
	return New(device, queue)
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendNative }

// Init initializes the backend.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	return nil
}

// Close destroys all shader modules created by CompileEffect.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.modules {
		b.device.DestroyShaderModule(m)
	}
	b.modules = nil
	b.initialized = false
}

// CompileEffect compiles WGSL to SPIR-V and creates the shader module for
// the UI quad effect.
func (b *Backend) CompileEffect(wgsl string) (backend.Effect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	if wgsl == "" {
		return nil, backend.ErrEmptyShader
	}

	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("native: failed to compile shader: %w", err)
	}

	// SPIR-V is consumed as little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	module, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "ui_quad",
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("native: failed to create shader module: %w", err)
	}
	b.modules = append(b.modules, module)

	return &effect{backend: b, module: module}, nil
}

// effect holds the compiled UI quad shader and the bindings for the next
// draw. Command submission is recorded but not yet encoded; see the
// package comment.
type effect struct {
	backend *Backend
	module  hal.ShaderModule

	args    backend.VertexArgs
	vbuf    []asset.PosTexVertex
	texture *asset.Texture
}

func (e *effect) UpdateConstants(args backend.VertexArgs) { e.args = args }

func (e *effect) BindVertexBuffer(vertices []asset.PosTexVertex) { e.vbuf = vertices }

func (e *effect) BindTexture(tex *asset.Texture) { e.texture = tex }

func (e *effect) ClearBindings() {
	e.vbuf = nil
	e.texture = nil
}

// Draw validates the draw state.
//
// TODO: encode the render pass via hal once the HAL render pipeline API
// lands (tracked alongside gogpu/wgpu's render pass support).
func (e *effect) Draw(slice asset.MeshSlice) {
	if e.texture == nil || len(e.vbuf) == 0 || slice.Len() == 0 {
		return
	}
	_ = describeTexture(e.texture.Meta)
}

// describeTexture maps an asset texture description onto wgpu creation
// parameters.
func describeTexture(meta asset.TextureMeta) TextureDescriptor {
	mips := uint32(1)
	if meta.MipLevels > 1 {
		mips = uint32(meta.MipLevels)
	}
	return TextureDescriptor{
		Label: "ui_text",
		Size: types.Extent3D{
			Width:              uint32(max(meta.Width, 0)),
			Height:             uint32(max(meta.Height, 0)),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: mips,
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        toWGPUFormat(meta.Format),
		Usage:         types.TextureUsageCopyDst | types.TextureUsageTextureBinding,
	}
}

// TextureDescriptor describes a texture to create on the GPU.
type TextureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Size is the texture dimensions.
	Size types.Extent3D

	// MipLevelCount is the number of mip levels (1+ required).
	MipLevelCount uint32

	// SampleCount is the number of samples per pixel (1 for non-MSAA).
	SampleCount uint32

	// Dimension is the texture dimension (1D, 2D, 3D).
	Dimension types.TextureDimension

	// Format is the texture pixel format.
	Format types.TextureFormat

	// Usage specifies how the texture will be used.
	Usage types.TextureUsage
}

// toWGPUFormat converts an asset texture format to a wgpu format.
func toWGPUFormat(f asset.TextureFormat) types.TextureFormat {
	switch f {
	case asset.TextureFormatRGBA32Float:
		return types.TextureFormatRGBA32Float
	case asset.TextureFormatRGBA8:
		return types.TextureFormatRGBA8Unorm
	case asset.TextureFormatR8:
		return types.TextureFormatR8Unorm
	default:
		return types.TextureFormatUndefined
	}
}
