package typeface

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/fontopts"
)

// variableGlyphs measures with a go-text face that has the Options'
// variation axes applied. Axes the font does not define are ignored by
// go-text, so a static font measures as its default instance.
type variableGlyphs struct {
	// mu guards face: go-text faces are not safe for concurrent use.
	mu   sync.Mutex
	face *font.Face

	scale   float64 // pixels per font unit
	hinting Hinting
}

func newVariableGlyphs(s *FontSource, vars []fontopts.Variation, size float64, h Hinting) (*variableGlyphs, error) {
	ft, err := s.goTextFont()
	if err != nil {
		return nil, err
	}

	face := font.NewFace(ft)
	face.SetVariations(goTextVariations(vars))

	upem := float64(ft.Upem())
	if upem <= 0 {
		upem = 1000
	}
	return &variableGlyphs{
		face:    face,
		scale:   size / upem,
		hinting: h,
	}, nil
}

// goTextVariations converts axis settings to go-text's representation.
func goTextVariations(vars []fontopts.Variation) []font.Variation {
	out := make([]font.Variation, len(vars))
	for i, v := range vars {
		out[i] = font.Variation{Tag: v.Tag.OpenType(), Value: v.Value}
	}
	return out
}

func (g *variableGlyphs) advance(r rune) (float64, bool) {
	g.mu.Lock()
	gid, ok := g.face.NominalGlyph(r)
	adv := float64(g.face.HorizontalAdvance(gid)) * g.scale
	g.mu.Unlock()

	if g.hinting != HintingNone {
		adv = math.Round(adv)
	}
	return adv, ok
}
