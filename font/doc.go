// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package font implements the font service consumed by the UI text
// rasterizer.
//
// A [Face] combines two views of the same font data: a go-text/typesetting
// parse used for HarfBuzz shaping (kerning, ligatures, complex scripts) and
// an x/image opentype parse used to rasterize per-glyph coverage masks.
// Layout shapes a string at a pixel size and returns positioned glyphs whose
// coverage masks can be walked pixel by pixel; masks are cached in an LRU
// keyed by rune and quantized size.
package font
