package bubblechart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("bubblechart: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// WithSize returns a font sharing the same source at a different size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	if size == f.size {
		return f
	}
	return newTTFFont(f.source, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying text/v2 face.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

var defaultSource *text.GoTextFaceSource

// DefaultFont returns the Go Regular font at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	if defaultSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("bubblechart: load default font: %w", err)
		}
		defaultSource = src
	}
	return newTTFFont(defaultSource, size), nil
}

// measureLines measures multi-line text line by line so an empty font or an
// empty line still yields a height.
func measureLines(f Font, s string) (w, h float64) {
	if f == nil {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		lw, _ := f.MeasureString(line)
		w = max(w, lw)
	}
	return w, float64(len(lines)) * f.LineHeight()
}
