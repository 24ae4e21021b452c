// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uikit

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/uikit/asset"
)

// TextRenderer rasterizes dirty text components into textures.
//
// Each frame, Process visits every text in the world, skips clean ones,
// and re-renders the rest: it lays the string out with the element's
// font, draws glyph coverage into a float RGBA buffer sized from the
// element's transform, and republishes the result as a texture in the
// store. The text component keeps the handle of its latest texture.
// maxTextureExtent bounds the rasterization target per dimension. It
// matches the largest texture size common GPU devices report, and keeps
// a runaway transform from allocating an absurd pixel buffer.
const maxTextureExtent = 16384

type TextRenderer struct {
	fonts    *asset.FontStore
	textures *asset.TextureStore
}

// NewTextRenderer creates a renderer drawing from the given stores.
func NewTextRenderer(fonts *asset.FontStore, textures *asset.TextureStore) *TextRenderer {
	return &TextRenderer{fonts: fonts, textures: textures}
}

// Process rasterizes every dirty text component.
//
// A text whose font handle does not resolve yet is left dirty and
// retried next frame. A text whose element has no transform is skipped
// the same way, since the texture size comes from the transform.
// Fully transparent texts produce a blank texture without touching the
// font at all.
func (r *TextRenderer) Process(w *World) {
	w.EachText(func(e Element, t *Text) {
		if !t.dirty {
			return
		}
		tr, ok := w.Transform(e)
		if !ok {
			return
		}
		font, ok := r.fonts.Resolve(t.font)
		if !ok {
			// Font still loading; keep the text dirty and retry.
			return
		}
		if !(tr.Width <= maxTextureExtent) || !(tr.Height <= maxTextureExtent) {
			// Negated compare so NaN extents land here too. Keep the
			// text dirty; a later transform fix will re-trigger it.
			Logger().Debug("text transform exceeds texture extent limit",
				"element", e,
				"width", tr.Width,
				"height", tr.Height)
			return
		}
		t.dirty = false

		width := max(int(tr.Width), 0)
		height := max(int(tr.Height), 0)
		pixels := make([]float32, width*height*4)

		if t.color[3] > 0.01 && width > 0 && height > 0 {
			r.rasterize(pixels, width, height, font, t)
		}

		old := t.texture
		t.texture = r.textures.LoadFromData(pixels, asset.TextureMeta{
			Width:  width,
			Height: height,
			Format: asset.TextureFormatRGBA32Float,
		})
		if !old.IsZero() {
			r.textures.Release(old)
		}
	})
}

func (r *TextRenderer) rasterize(pixels []float32, width, height int, font asset.Font, t *Text) {
	content := t.content
	if hasCombiningMark(content) {
		content = norm.NFD.String(content)
	}
	glyphs := font.Layout(content, t.fontSize)
	log := Logger()
	log.Debug("rasterizing text",
		"glyphs", len(glyphs),
		"width", width,
		"height", height)

	for _, g := range glyphs {
		gx, gy := g.Position()
		ox := int(gx)
		oy := int(gy)
		g.Draw(func(dx, dy int, coverage float32) {
			if coverage <= 0.01 {
				return
			}
			x := ox + dx
			y := oy + dy
			if x < 0 || x >= width || y < 0 || y >= height {
				return
			}
			// Overwrite, not blend: overlapping glyph boxes would
			// otherwise double up coverage at the seams.
			i := (y*width + x) * 4
			pixels[i] = t.color[0]
			pixels[i+1] = t.color[1]
			pixels[i+2] = t.color[2]
			pixels[i+3] = t.color[3] * coverage
		})
	}
}

// hasCombiningMark reports whether s contains a combining mark, in
// which case the string is decomposed before shaping so marks attach
// to their base characters consistently.
func hasCombiningMark(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc) {
			return true
		}
	}
	return false
}
