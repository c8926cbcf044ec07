package fontopts

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. It is a convenience for slices.SortFunc and friends.
func Compare(a, b Options) int {
	return a.Compare(b)
}

// Compare orders o against other over all fields, in this order: name,
// style, typeface, fallbacks, metrics kind, height, point height, tracking,
// horizontal scale, ascent override, descent override, fallback enabled,
// underline, variations.
//
// Unset optional values sort before set ones, a nil typeface before any
// other, and typefaces otherwise by ID. Floats compare as cmp.Compare does,
// so the order is total even with NaN.
func (o Options) Compare(other Options) int {
	if c := strings.Compare(o.name, other.name); c != 0 {
		return c
	}
	if c := strings.Compare(o.style, other.style); c != 0 {
		return c
	}
	if c := compareTypeface(o.typeface, other.typeface); c != 0 {
		return c
	}
	if c := slices.Compare(o.fallbacks, other.fallbacks); c != 0 {
		return c
	}
	if c := cmp.Compare(o.metricsKind, other.metricsKind); c != 0 {
		return c
	}
	if c := compareOptional(o.Height())(other.Height()); c != 0 {
		return c
	}
	if c := compareOptional(o.PointHeight())(other.PointHeight()); c != 0 {
		return c
	}
	if c := cmp.Compare(o.tracking, other.tracking); c != 0 {
		return c
	}
	if c := cmp.Compare(o.HorizontalScale(), other.HorizontalScale()); c != 0 {
		return c
	}
	if c := compareOptional(o.AscentOverride())(other.AscentOverride()); c != 0 {
		return c
	}
	if c := compareOptional(o.DescentOverride())(other.DescentOverride()); c != 0 {
		return c
	}
	if c := compareBool(o.FallbackEnabled(), other.FallbackEnabled()); c != 0 {
		return c
	}
	if c := compareBool(o.underlined, other.underlined); c != 0 {
		return c
	}
	return slices.CompareFunc(o.variations, other.variations, Variation.Compare)
}

// Equal reports whether o and other describe the same font.
func (o Options) Equal(other Options) bool {
	return o.Compare(other) == 0
}

// Less reports whether o sorts before other.
func (o Options) Less(other Options) bool {
	return o.Compare(other) < 0
}

// compareOptional is curried so that (value, ok) accessor results can be
// passed straight through.
func compareOptional(a float32, aok bool) func(float32, bool) int {
	return func(b float32, bok bool) int {
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		return cmp.Compare(a, b)
	}
}

func compareTypeface(a, b Typeface) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(a.ID(), b.ID())
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
