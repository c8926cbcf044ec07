package typeface

import (
	"errors"
	"testing"

	"github.com/gogpu/fontopts"
)

func TestNewMultiFaceEmpty(t *testing.T) {
	if _, err := NewMultiFace(); !errors.Is(err, ErrEmptyFaces) {
		t.Errorf("NewMultiFace() error = %v, want ErrEmptyFaces", err)
	}
}

func TestMultiFaceRuneSelection(t *testing.T) {
	opts := fontopts.NewHeight(20)
	latin := fakeSource(t, "Latin", "Regular", "ab").Face(opts)
	// The fallback is twice as wide so the chosen face is visible in advances.
	wide := fakeSource(t, "Wide", "Regular", "bc").Face(opts.WithHorizontalScale(2))

	multi, err := NewMultiFace(latin, wide)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text string
		want float64
	}{
		{"a", 10},
		{"b", 10}, // primary wins when both have the glyph
		{"c", 20},
		{"abc", 40},
		{"z", 10}, // no face has it, primary measures .notdef
	}
	for _, tt := range tests {
		if got := multi.Advance(tt.text); !near(got, tt.want) {
			t.Errorf("Advance(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	for r, want := range map[rune]bool{'a': true, 'c': true, 'z': false} {
		if got := multi.HasGlyph(r); got != want {
			t.Errorf("HasGlyph(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestMultiFacePrimaryProperties(t *testing.T) {
	opts := fontopts.NewHeight(10)
	primary := fakeSource(t, "P", "Regular", "a").Face(opts)
	fallback := fakeSource(t, "F", "Regular", "b").Face(fontopts.NewHeight(30))

	multi, err := NewMultiFace(primary, fallback)
	if err != nil {
		t.Fatal(err)
	}

	if multi.Size() != primary.Size() {
		t.Errorf("Size() = %v, want %v", multi.Size(), primary.Size())
	}
	if multi.Metrics() != primary.Metrics() {
		t.Errorf("Metrics() = %+v, want %+v", multi.Metrics(), primary.Metrics())
	}
	if multi.Source() != nil {
		t.Error("Source() of a composite face should be nil")
	}
	if !multi.Options().Equal(opts) {
		t.Error("Options() should come from the primary face")
	}

	faces := multi.Faces()
	faces[0] = nil
	if multi.Faces()[0] == nil {
		t.Error("Faces() must return a copy")
	}
}
