package typeface

import (
	"github.com/gogpu/fontopts"
)

// Face is a font at the size and styling an Options asks for.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size, with any
	// ascent/descent override applied.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// including horizontal scale and tracking.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Size returns the size of this face in points.
	Size() float64

	// Source returns the FontSource this face was created from, or nil for
	// composite faces.
	Source() *FontSource

	// Options returns the descriptor the face was created for.
	Options() fontopts.Options

	// private prevents external implementation
	private()
}

// glyphMeasurer measures single runes at a fixed size.
type glyphMeasurer interface {
	// advance returns the unscaled advance of r and whether the font has a
	// glyph for it. Missing runes measure as the .notdef glyph.
	advance(r rune) (float64, bool)
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source  *FontSource
	opts    fontopts.Options
	size    float64
	hinting Hinting
	glyphs  glyphMeasurer
}

func newSourceFace(s *FontSource, opts fontopts.Options) *sourceFace {
	f := &sourceFace{
		source:  s,
		opts:    opts,
		size:    pointSize(s, opts),
		hinting: hintingFor(opts.MetricsKind()),
	}
	f.glyphs = staticGlyphs{face: f}

	if vars := opts.Variations(); len(vars) > 0 {
		g, err := newVariableGlyphs(s, vars, f.size, f.hinting)
		if err != nil {
			fontopts.Logger().Warn("typeface: variations ignored",
				"family", s.name, "err", err)
		} else {
			f.glyphs = g
		}
	}
	return f
}

// pointSize picks the rendering size for opts: the point height when set,
// otherwise the height (or fontopts.DefaultHeight) converted to points.
func pointSize(s *FontSource, opts fontopts.Options) float64 {
	if p, ok := opts.PointHeight(); ok {
		return float64(p)
	}
	h, ok := opts.Height()
	if !ok {
		h = fontopts.DefaultHeight
	}
	return float64(h) / s.heightScale
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	fm := f.source.Parsed().Metrics(f.size, f.hinting)
	m := Metrics{
		Ascent:    fm.Ascent,
		Descent:   fm.Descent,
		LineGap:   fm.LineGap,
		XHeight:   fm.XHeight,
		CapHeight: fm.CapHeight,
	}
	if a, ok := f.opts.AscentOverride(); ok {
		m.Ascent = float64(a) * f.size
	}
	if d, ok := f.opts.DescentOverride(); ok {
		m.Descent = float64(d) * f.size
	}
	return m
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	scale := float64(f.opts.HorizontalScale())
	extra := float64(f.opts.Tracking()) * f.size

	total := 0.0
	for _, r := range text {
		adv, _ := f.glyphs.advance(r)
		total += adv*scale + extra
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	_, ok := f.glyphs.advance(r)
	return ok
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Options implements Face.Options.
func (f *sourceFace) Options() fontopts.Options {
	return f.opts
}

// private implements the Face interface.
func (f *sourceFace) private() {}

// staticGlyphs measures through the source's ParsedFont.
type staticGlyphs struct {
	face *sourceFace
}

func (g staticGlyphs) advance(r rune) (float64, bool) {
	parsed := g.face.source.Parsed()
	gid := parsed.GlyphIndex(r)
	return parsed.GlyphAdvance(gid, g.face.size, g.face.hinting), gid != 0
}
