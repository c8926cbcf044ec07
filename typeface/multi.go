package typeface

import (
	"github.com/gogpu/fontopts"
)

// MultiFace combines a primary face with fallback faces.
// Each rune is measured with the first face that has a glyph for it.
// MultiFace is safe for concurrent use.
type MultiFace struct {
	faces []Face
}

// NewMultiFace creates a MultiFace from faces, primary first.
// Returns ErrEmptyFaces if faces is empty.
func NewMultiFace(faces ...Face) (*MultiFace, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyFaces
	}
	return &MultiFace{faces: faces}, nil
}

// Faces returns the faces in fallback order.
func (m *MultiFace) Faces() []Face {
	out := make([]Face, len(m.faces))
	copy(out, m.faces)
	return out
}

// Metrics implements Face.Metrics.
// Returns metrics from the primary face.
func (m *MultiFace) Metrics() Metrics {
	return m.faces[0].Metrics()
}

// Advance implements Face.Advance.
// Each rune contributes the advance of the face selected for it.
func (m *MultiFace) Advance(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += m.faceForRune(r).Advance(string(r))
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
// Returns true if any face has the glyph.
func (m *MultiFace) HasGlyph(r rune) bool {
	for _, face := range m.faces {
		if face.HasGlyph(r) {
			return true
		}
	}
	return false
}

// Size implements Face.Size.
// Returns the size of the primary face.
func (m *MultiFace) Size() float64 {
	return m.faces[0].Size()
}

// Source implements Face.Source.
// Returns nil since MultiFace is a composite face.
func (m *MultiFace) Source() *FontSource {
	return nil
}

// Options implements Face.Options.
func (m *MultiFace) Options() fontopts.Options {
	return m.faces[0].Options()
}

// private implements the Face interface.
func (m *MultiFace) private() {}

// faceForRune returns the first face that has the glyph for the rune.
// If no face has the glyph, returns the primary face.
func (m *MultiFace) faceForRune(r rune) Face {
	for _, face := range m.faces {
		if face.HasGlyph(r) {
			return face
		}
	}
	return m.faces[0]
}
