package uikit

// Text is a string rendered into a per-element texture by the text
// pass. Fields are private: every mutating accessor marks the text
// dirty, even when the new value equals the old one, so callers can
// force a re-rasterization by re-setting a field.
type Text struct {
	content  string
	font     FontHandle
	fontSize float32
	color    [4]float32

	dirty   bool
	texture TextureHandle
}

// NewText creates a text component. New texts start dirty so the first
// frame rasterizes them.
func NewText(content string, font FontHandle, size float32, color [4]float32) *Text {
	return &Text{
		content:  content,
		font:     font,
		fontSize: size,
		color:    color,
		dirty:    true,
	}
}

// Content returns the displayed string.
func (t *Text) Content() string { return t.content }

// SetContent replaces the displayed string and marks the text dirty.
func (t *Text) SetContent(s string) {
	t.content = s
	t.dirty = true
}

// Font returns the font handle.
func (t *Text) Font() FontHandle { return t.font }

// SetFont replaces the font and marks the text dirty.
func (t *Text) SetFont(f FontHandle) {
	t.font = f
	t.dirty = true
}

// FontSize returns the point size.
func (t *Text) FontSize() float32 { return t.fontSize }

// SetFontSize replaces the point size and marks the text dirty.
func (t *Text) SetFontSize(s float32) {
	t.fontSize = s
	t.dirty = true
}

// Color returns the RGBA text color in [0, 1].
func (t *Text) Color() [4]float32 { return t.color }

// SetColor replaces the color and marks the text dirty.
func (t *Text) SetColor(c [4]float32) {
	t.color = c
	t.dirty = true
}

// Dirty reports whether the text needs rasterization.
func (t *Text) Dirty() bool { return t.dirty }

// Texture returns the handle of the last rasterized texture. It is the
// zero handle until the text pass has processed the text once.
func (t *Text) Texture() TextureHandle { return t.texture }
