package fontopts

import "cmp"

// Variation is the requested value for one variable-font axis.
type Variation struct {
	Tag   Tag
	Value float32
}

// Equal reports whether v and other have the same tag and value.
// Unlike ==, two NaN values are considered equal so Equal agrees with Compare.
func (v Variation) Equal(other Variation) bool {
	return v.Compare(other) == 0
}

// Compare orders variations by tag, then by value.
func (v Variation) Compare(other Variation) int {
	if c := v.Tag.Compare(other.Tag); c != 0 {
		return c
	}
	return cmp.Compare(v.Value, other.Value)
}

// Less reports whether v sorts before other.
func (v Variation) Less(other Variation) bool {
	return v.Compare(other) < 0
}
