// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uikit/asset"
)

// Option configures a Face during parsing.
type Option func(*faceOptions)

type faceOptions struct {
	maskCacheCapacity int
}

// WithMaskCacheCapacity sets the number of glyph coverage masks the face
// keeps cached. Masks past the capacity are evicted least-recently-used.
func WithMaskCacheCapacity(n int) Option {
	return func(o *faceOptions) {
		o.maskCacheCapacity = n
	}
}

// Face is a parsed font usable by the UI text rasterizer.
//
// The same font data is parsed twice on purpose: once with
// go-text/typesetting for HarfBuzz shaping and once with x/image's opentype
// for coverage-mask rasterization. The typesetting *Font is thread-safe;
// the opentype faces are not and are guarded by a mutex.
//
// Face implements [asset.Font].
type Face struct {
	// shapeFont is the thread-safe typesetting parse used for shaping.
	shapeFont *gotext.Font

	// otFont is the x/image parse used for mask rasterization.
	otFont *opentype.Font

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing across sequential calls avoids per-layout allocation.
	shaperPool sync.Pool

	// masks caches rasterized coverage masks across Layout calls.
	masks *maskCache

	// mu guards xfaces; opentype.Face is not safe for concurrent use.
	mu     sync.Mutex
	xfaces map[fixed.Int26_6]xfont.Face
}

var _ asset.Font = (*Face)(nil)

// Parse parses OpenType/TrueType font data into a Face.
func Parse(data []byte, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	o := faceOptions{maskCacheCapacity: DefaultMaskCacheCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	gtFace, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse for shaping: %w", err)
	}

	otFont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse for rasterization: %w", err)
	}

	f := &Face{
		shapeFont: gtFace.Font,
		otFont:    otFont,
		masks:     newMaskCache(o.maskCacheCapacity),
		xfaces:    make(map[fixed.Int26_6]xfont.Face),
	}
	f.shaperPool.New = func() any {
		return &shaping.HarfbuzzShaper{}
	}
	return f, nil
}

// Layout shapes text at the given pixel size and returns one positioned
// glyph per shaped character, placed left to right from the layout origin
// with the baseline at the font's ascent. Layout implements [asset.Font].
func (f *Face) Layout(text string, size float32) []asset.Glyph {
	if text == "" || size <= 0 {
		return nil
	}

	shaped := f.shape(text, size)
	if len(shaped) == 0 {
		return nil
	}

	sizeKey := floatToFixed(size)
	ascent := f.ascent(sizeKey)

	out := make([]asset.Glyph, 0, len(shaped))
	for _, g := range shaped {
		mask := f.maskFor(g.r, sizeKey)
		out = append(out, &positionedGlyph{
			x:    g.x + float32(mask.bearingX),
			y:    ascent + g.y + float32(mask.bearingY),
			mask: mask.alpha,
		})
	}
	return out
}

// MaskCacheLen returns the number of cached glyph masks.
func (f *Face) MaskCacheLen() int { return f.masks.len() }

// glyphKey identifies one cached coverage mask.
type glyphKey struct {
	r    rune
	size fixed.Int26_6
}

// glyphMask is a rasterized coverage mask plus its placement relative to
// the baseline dot. A nil alpha means the glyph has no coverage (e.g. a
// space); its positioned glyph draws nothing.
type glyphMask struct {
	alpha    *image.Alpha
	bearingX int
	bearingY int
}

// maskFor returns the coverage mask for r at the quantized size,
// rasterizing and caching it on first use.
func (f *Face) maskFor(r rune, size fixed.Int26_6) *glyphMask {
	key := glyphKey{r: r, size: size}
	if mask, ok := f.masks.get(key); ok {
		return mask
	}
	mask := f.rasterize(r, size)
	f.masks.put(key, mask)
	return mask
}

// rasterize renders the coverage mask for r with the baseline dot at the
// origin, so the mask bearing is the glyph's offset from its pen position.
func (f *Face) rasterize(r rune, size fixed.Int26_6) *glyphMask {
	f.mu.Lock()
	defer f.mu.Unlock()

	xface, err := f.xface(size)
	if err != nil {
		return &glyphMask{}
	}

	dr, src, srcp, _, ok := xface.Glyph(fixed.Point26_6{}, r)
	if !ok || src == nil || dr.Empty() {
		return &glyphMask{}
	}

	alpha := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	if srcAlpha, isAlpha := src.(*image.Alpha); isAlpha {
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				alpha.SetAlpha(x, y, srcAlpha.AlphaAt(srcp.X+x, srcp.Y+y))
			}
		}
	} else {
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				c := color.AlphaModel.Convert(src.At(srcp.X+x, srcp.Y+y)).(color.Alpha)
				alpha.SetAlpha(x, y, c)
			}
		}
	}
	return &glyphMask{alpha: alpha, bearingX: dr.Min.X, bearingY: dr.Min.Y}
}

// ascent returns the font ascent in pixels at the given size.
// Must not be called with f.mu held.
func (f *Face) ascent(size fixed.Int26_6) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	xface, err := f.xface(size)
	if err != nil {
		return 0
	}
	return float32(fixedToFloat(xface.Metrics().Ascent))
}

// xface returns the opentype face for a size, creating it on first use.
// Caller must hold f.mu.
func (f *Face) xface(size fixed.Int26_6) (xfont.Face, error) {
	if face, ok := f.xfaces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.otFont, &opentype.FaceOptions{
		Size:    fixedToFloat(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.xfaces[size] = face
	return face, nil
}

// positionedGlyph is one laid-out glyph. It implements [asset.Glyph].
type positionedGlyph struct {
	x, y float32
	mask *image.Alpha
}

// Position returns the top-left corner of the glyph's coverage mask in
// layout space.
func (g *positionedGlyph) Position() (float32, float32) {
	return g.x, g.y
}

// Draw walks the coverage mask, skipping fully transparent pixels.
func (g *positionedGlyph) Draw(fn func(x, y int, coverage float32)) {
	if g.mask == nil {
		return
	}
	b := g.mask.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := g.mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A
			if a == 0 {
				continue
			}
			fn(x, y, float32(a)/255)
		}
	}
}
