// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package font

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedGlyph is a glyph positioned by the shaper: the character it came
// from plus its pen position relative to the layout origin.
type shapedGlyph struct {
	r    rune
	x, y float32
}

// shape runs HarfBuzz shaping over text and returns pen-positioned glyphs.
// Kerning, ligature substitution, and contextual alternates are applied by
// the shaper; the caller only sees final positions.
func (f *Face) shape(text string, size float32) []shapedGlyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	// font.Face is not safe for concurrent use; each shaping call gets a
	// lightweight instance wrapping the thread-safe *Font.
	face := gotext.NewFace(f.shapeFont)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	f.shaperPool.Put(shaper)

	if len(output.Glyphs) == 0 {
		return nil
	}

	result := make([]shapedGlyph, len(output.Glyphs))
	var x, y float32
	for i, g := range output.Glyphs {
		cluster := g.TextIndex()
		var r rune
		if cluster >= 0 && cluster < len(runes) {
			r = runes[cluster]
		}
		result[i] = shapedGlyph{
			r: r,
			x: x + float32(fixedToFloat(g.XOffset)),
			y: y + float32(fixedToFloat(g.YOffset)),
		}
		x += float32(fixedToFloat(g.Advance))
	}
	return result
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; mixed-script text should be
// split into runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a pixel size to 26.6 fixed point.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
