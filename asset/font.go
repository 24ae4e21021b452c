package asset

// Glyph is one shaped, positioned glyph produced by font layout.
type Glyph interface {
	// Position returns the glyph's placement in layout space: the
	// top-left corner of its coverage mask relative to the layout origin.
	Position() (x, y float32)

	// Draw walks the glyph's coverage mask, calling fn once per covered
	// pixel with coordinates local to the mask and coverage in [0, 1].
	Draw(fn func(x, y int, coverage float32))
}

// Font lays out text into positioned glyphs.
//
// Implementations own shaping and kerning; callers only consume positioned
// coverage masks. See the font package for the production implementation.
type Font interface {
	// Layout shapes text at the given pixel size, starting at the layout
	// origin. It returns one positioned glyph per shaped character.
	Layout(text string, size float32) []Glyph
}

// FontHandle refers to a font in a FontStore.
type FontHandle = Handle[Font]

// FontStore holds fonts. A font handle that has been allocated but not yet
// fulfilled represents a font still loading; resolving it reports false and
// the caller retries on a later frame.
type FontStore = Store[Font]

// NewFontStore creates an empty font store.
func NewFontStore() *FontStore {
	return NewStore[Font]()
}
