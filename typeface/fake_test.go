package typeface

import (
	"errors"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fakeParser builds fonts from "family;style;runes" data so tests control
// names, coverage and metrics exactly. Every glyph advances half an em;
// ascent is 0.8 em and descent 0.2 em, so application-unit heights equal
// point sizes.
type fakeParser struct{}

func init() {
	RegisterParser("fake", fakeParser{})
}

func (fakeParser) Parse(data []byte) (ParsedFont, error) {
	parts := strings.SplitN(string(data), ";", 3)
	if len(parts) != 3 {
		return nil, errors.New("fake: want family;style;runes")
	}
	return &fakeFont{family: parts[0], style: parts[1], runes: []rune(parts[2])}, nil
}

type fakeFont struct {
	family, style string
	runes         []rune
}

func (f *fakeFont) Name() string      { return f.family }
func (f *fakeFont) FullName() string  { return f.family + " " + f.style }
func (f *fakeFont) StyleName() string { return f.style }
func (f *fakeFont) UnitsPerEm() int   { return 1000 }

func (f *fakeFont) GlyphIndex(r rune) uint16 {
	for i, c := range f.runes {
		if c == r {
			return uint16(i + 1)
		}
	}
	return 0
}

func (f *fakeFont) GlyphAdvance(_ uint16, ppem float64, h Hinting) float64 {
	return hint(ppem*0.5, h)
}

func (f *fakeFont) Metrics(ppem float64, h Hinting) FontMetrics {
	return FontMetrics{
		Ascent:    hint(ppem*0.8, h),
		Descent:   hint(ppem*0.2, h),
		LineGap:   hint(ppem*0.1, h),
		XHeight:   hint(ppem*0.5, h),
		CapHeight: hint(ppem*0.7, h),
	}
}

func hint(x float64, h Hinting) float64 {
	if h == HintingNone {
		return x
	}
	return math.Round(x)
}

// fakeSource creates a FontSource through the fake parser.
func fakeSource(t *testing.T, family, style, runes string) *FontSource {
	t.Helper()
	src, err := NewFontSource([]byte(family+";"+style+";"+runes), WithParser("fake"))
	if err != nil {
		t.Fatalf("fake source %s %s: %v", family, style, err)
	}
	return src
}

// loadGoFont loads an embedded Go font.
func loadGoFont(t *testing.T, data []byte) *FontSource {
	t.Helper()
	src, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func loadGoRegular(t *testing.T) *FontSource { t.Helper(); return loadGoFont(t, goregular.TTF) }
func loadGoBold(t *testing.T) *FontSource    { t.Helper(); return loadGoFont(t, gobold.TTF) }

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
