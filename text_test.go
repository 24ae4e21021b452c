package uikit

import "testing"

func TestNewTextStartsDirty(t *testing.T) {
	txt := NewText("hi", FontHandle{}, 12, [4]float32{1, 1, 1, 1})
	if !txt.Dirty() {
		t.Error("new text not dirty")
	}
	if !txt.Texture().IsZero() {
		t.Error("new text has a texture before rasterization")
	}
}

func TestTextSettersAlwaysDirty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Text)
	}{
		{"content changed", func(x *Text) { x.SetContent("other") }},
		{"content unchanged", func(x *Text) { x.SetContent("hi") }},
		{"size changed", func(x *Text) { x.SetFontSize(24) }},
		{"size unchanged", func(x *Text) { x.SetFontSize(12) }},
		{"color changed", func(x *Text) { x.SetColor([4]float32{0, 0, 0, 1}) }},
		{"color unchanged", func(x *Text) { x.SetColor([4]float32{1, 1, 1, 1}) }},
		{"font unchanged", func(x *Text) { x.SetFont(x.Font()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewText("hi", FontHandle{}, 12, [4]float32{1, 1, 1, 1})
			txt.dirty = false
			tt.mutate(txt)
			if !txt.Dirty() {
				t.Error("mutating accessor did not mark text dirty")
			}
		})
	}
}

func TestTextAccessors(t *testing.T) {
	txt := NewText("hello", FontHandle{}, 16, [4]float32{0.5, 0.25, 1, 1})
	if txt.Content() != "hello" {
		t.Errorf("Content = %q", txt.Content())
	}
	if txt.FontSize() != 16 {
		t.Errorf("FontSize = %v", txt.FontSize())
	}
	if txt.Color() != [4]float32{0.5, 0.25, 1, 1} {
		t.Errorf("Color = %v", txt.Color())
	}
}
