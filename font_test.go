package bubblechart

import "testing"

func TestLoadTTFFont_InvalidData(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid TTF data")
	}
}

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont(13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Size() != 13 || f.LineHeight() <= 0 || f.Face() == nil {
		t.Errorf("unexpected font size %v line height %v", f.Size(), f.LineHeight())
	}
	w1, _ := f.MeasureString("a")
	w3, _ := f.MeasureString("aaa")
	if w1 <= 0 || w3 <= w1 {
		t.Errorf("expected wider text for more runes, got %v and %v", w1, w3)
	}
	if f.WithSize(13) != f {
		t.Error("expected WithSize to reuse the font at the same size")
	}
	big := f.WithSize(26)
	if big.LineHeight() <= f.LineHeight() {
		t.Errorf("expected a taller line at 26px, got %v", big.LineHeight())
	}
}

func TestMeasureLines(t *testing.T) {
	tests := []struct {
		name string
		font Font
		text string
		w, h float64
	}{
		{"nil font", nil, "abc", 0, 0},
		{"single", testFont, "abc", 18, 10},
		{"empty", testFont, "", 0, 10},
		{"multi", testFont, "a\nbbbb\ncc", 24, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := measureLines(tt.font, tt.text)
			if w != tt.w || h != tt.h {
				t.Errorf("expected %vx%v, got %vx%v", tt.w, tt.h, w, h)
			}
		})
	}
}
