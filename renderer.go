// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uikit

import (
	"fmt"

	"github.com/gogpu/uikit/asset"
	"github.com/gogpu/uikit/backend"
)

// Renderer bundles the world, the asset stores, and the three frame
// passes behind one entry point. Each call to [Renderer.Frame] runs
// draw-order maintenance, text rasterization, and quad emission in
// that order.
type Renderer struct {
	world *World
	cache *DrawOrderCache

	fonts    *asset.FontStore
	textures *asset.TextureStore
	meshes   *asset.MeshStore

	text *TextRenderer
	pass *DrawPass

	backend backend.RenderBackend
	screen  Screen
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackend selects the rendering backend. By default the renderer
// uses the highest-priority registered backend.
func WithBackend(b backend.RenderBackend) Option {
	return func(r *Renderer) { r.backend = b }
}

// WithScreen sets the screen the UI is projected onto.
// The default is an 800×600 fixed screen.
func WithScreen(s Screen) Option {
	return func(r *Renderer) { r.screen = s }
}

// WithFontStore supplies a shared font store. Useful when fonts are
// loaded by an asset pipeline the renderer does not own.
func WithFontStore(s *asset.FontStore) Option {
	return func(r *Renderer) { r.fonts = s }
}

// WithTextureStore supplies a shared texture store.
func WithTextureStore(s *asset.TextureStore) Option {
	return func(r *Renderer) { r.textures = s }
}

// NewRenderer creates a renderer, initializes its backend, and
// compiles the UI quad effect.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		world:  NewWorld(),
		cache:  NewDrawOrderCache(),
		screen: FixedScreen{W: 800, H: 600},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		r.fonts = asset.NewFontStore()
	}
	if r.textures == nil {
		r.textures = asset.NewTextureStore()
	}
	r.meshes = asset.NewMeshStore()

	if r.backend == nil {
		r.backend = backend.Default()
	}
	if r.backend == nil {
		return nil, ErrNoBackend
	}
	if err := r.backend.Init(); err != nil {
		return nil, fmt.Errorf("init %s backend: %w", r.backend.Name(), err)
	}

	r.text = NewTextRenderer(r.fonts, r.textures)
	r.pass = NewDrawPass(r.meshes, r.textures)
	if err := r.pass.Init(r.backend); err != nil {
		r.backend.Close()
		return nil, err
	}
	return r, nil
}

// World returns the renderer's component world.
func (r *Renderer) World() *World { return r.world }

// Fonts returns the font store.
func (r *Renderer) Fonts() *asset.FontStore { return r.fonts }

// Textures returns the texture store.
func (r *Renderer) Textures() *asset.TextureStore { return r.textures }

// Cache returns the draw-order cache.
func (r *Renderer) Cache() *DrawOrderCache { return r.cache }

// Frame runs one full UI frame: order maintenance, then text
// rasterization, then draw emission. It returns [ErrMeshNotReady] if
// the shared quad mesh is not resolvable; the frame may be retried.
func (r *Renderer) Frame() error {
	r.cache.Maintain(r.world)
	r.text.Process(r.world)
	err := r.pass.Emit(r.world, r.cache, r.screen)
	Logger().Debug("frame emitted", "elements", r.cache.Len(), "err", err)
	return err
}

// Close releases the backend.
func (r *Renderer) Close() {
	r.backend.Close()
}
