// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uikit

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/uikit/asset"
	"github.com/gogpu/uikit/backend"
)

//go:embed shaders/quad.wgsl
var quadShaderSource string

// Screen reports the pixel dimensions the UI is projected onto.
type Screen interface {
	Width() float32
	Height() float32
}

// FixedScreen is a Screen with constant dimensions.
type FixedScreen struct {
	W, H float32
}

func (s FixedScreen) Width() float32  { return s.W }
func (s FixedScreen) Height() float32 { return s.H }

// DrawPass emits one textured quad per visible element, in the order
// the draw-order cache dictates.
//
// All elements share a single unit quad mesh that the vertex shader
// scales and positions from per-draw constants. Each element draws up
// to two layers: its image texture first, then its text texture over
// it.
type DrawPass struct {
	meshes   *asset.MeshStore
	textures *asset.TextureStore
	quad     MeshHandle
	effect   backend.Effect
}

// NewDrawPass creates a pass drawing from the given stores and loads
// the shared unit quad into the mesh store.
func NewDrawPass(meshes *asset.MeshStore, textures *asset.TextureStore) *DrawPass {
	return &DrawPass{
		meshes:   meshes,
		textures: textures,
		quad:     meshes.LoadFromData(asset.UnitQuad()),
	}
}

// Init compiles the quad effect on the given backend.
func (p *DrawPass) Init(b backend.RenderBackend) error {
	effect, err := b.CompileEffect(quadShaderSource)
	if err != nil {
		return fmt.Errorf("compile ui quad effect: %w", err)
	}
	p.effect = effect
	return nil
}

// Emit draws every cached element, deepest first.
//
// If the shared quad mesh does not resolve, Emit aborts the whole frame
// with [ErrMeshNotReady] before issuing any draw; the caller retries
// next frame with the cache intact. Elements whose textures do not
// resolve are skipped individually.
func (p *DrawPass) Emit(w *World, cache *DrawOrderCache, screen Screen) error {
	if p.effect == nil {
		return ErrNoBackend
	}
	mesh, ok := p.meshes.Resolve(p.quad)
	if !ok {
		return ErrMeshNotReady
	}
	vertices, ok := mesh.Buffer()
	if !ok {
		return ErrMeshNotReady
	}
	slice := mesh.Slice()

	proj := [4]float32{
		2 / screen.Width(),
		-2 / screen.Height(),
		-2,
		1,
	}

	for _, entry := range cache.ordered {
		t, ok := w.Transform(entry.element)
		if !ok {
			continue
		}
		args := backend.VertexArgs{
			Proj:      proj,
			Coord:     [2]float32{t.X, t.Y},
			Dimension: [2]float32{t.Width, t.Height},
		}

		if img, ok := w.Image(entry.element); ok {
			p.draw(img.Texture, args, vertices, slice)
		}
		if text, ok := w.Text(entry.element); ok {
			p.draw(text.texture, args, vertices, slice)
		}
	}
	return nil
}

// draw issues one quad with the given texture, skipping silently when
// the texture does not resolve yet. Bindings are cleared after each
// draw so no texture stays bound between elements.
func (p *DrawPass) draw(h TextureHandle, args backend.VertexArgs, vertices []asset.PosTexVertex, slice asset.MeshSlice) {
	tex, ok := p.textures.Resolve(h)
	if !ok {
		return
	}
	p.effect.UpdateConstants(args)
	p.effect.BindVertexBuffer(vertices)
	p.effect.BindTexture(tex)
	p.effect.Draw(slice)
	p.effect.ClearBindings()
}
