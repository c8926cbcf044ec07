package typeface

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont on top of sfnt.Font.
//
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, which is why each method allocates one.
type ximageFont struct {
	font *opentype.Font
}

func (f *ximageFont) name(id sfnt.NameID) string {
	s, err := f.font.Name(nil, id)
	if err != nil {
		return ""
	}
	return s
}

// Name implements ParsedFont.Name. The typographic family wins over the
// legacy family name when present.
func (f *ximageFont) Name() string {
	if s := f.name(sfnt.NameIDTypographicFamily); s != "" {
		return s
	}
	return f.name(sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageFont) FullName() string {
	return f.name(sfnt.NameIDFull)
}

// StyleName implements ParsedFont.StyleName.
func (f *ximageFont) StyleName() string {
	if s := f.name(sfnt.NameIDTypographicSubfamily); s != "" {
		return s
	}
	return f.name(sfnt.NameIDSubfamily)
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageFont) GlyphIndex(r rune) uint16 {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageFont) GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), xHinting(h))
	if err != nil {
		return 0
	}
	return fixedToFloat64(adv)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), xHinting(h))
	if err != nil {
		return FontMetrics{}
	}

	ascent := math.Abs(fixedToFloat64(m.Ascent))
	descent := math.Abs(fixedToFloat64(m.Descent))
	return FontMetrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(0, fixedToFloat64(m.Height)-ascent-descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
}

// xHinting maps our Hinting onto x/image's.
func xHinting(h Hinting) font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// floatToFixed converts a size in pixels to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
