package fontopts

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font/opentype"
)

// Errors returned by ParseTag.
var (
	// ErrTagTooLong is returned for tag strings longer than four bytes.
	ErrTagTooLong = errors.New("fontopts: tag longer than 4 characters")

	// ErrTagInvalid is returned for tag strings with bytes outside printable ASCII.
	ErrTagInvalid = errors.New("fontopts: tag must be printable ASCII")
)

// Tag identifies one axis of a variable font, such as weight or width.
//
// A Tag packs four ASCII characters big-endian: the first character lands
// in the most significant byte. This is the OpenType layout, so a Tag
// converts to [opentype.Tag] without reordering.
type Tag uint32

// Registered variation axis tags.
const (
	TagWeight      Tag = 'w'<<24 | 'g'<<16 | 'h'<<8 | 't'
	TagWidth       Tag = 'w'<<24 | 'd'<<16 | 't'<<8 | 'h'
	TagSlant       Tag = 's'<<24 | 'l'<<16 | 'n'<<8 | 't'
	TagItalic      Tag = 'i'<<24 | 't'<<16 | 'a'<<8 | 'l'
	TagOpticalSize Tag = 'o'<<24 | 'p'<<16 | 's'<<8 | 'z'
)

// ParseTag packs s into a Tag.
//
// s holds at most four printable ASCII characters. Shorter strings are
// padded on the right with spaces, so "wdt" and "wdt " give the same Tag.
func ParseTag(s string) (Tag, error) {
	if len(s) > 4 {
		return 0, fmt.Errorf("%w: %q", ErrTagTooLong, s)
	}

	var t Tag
	for i := range 4 {
		c := byte(' ')
		if i < len(s) {
			c = s[i]
		}
		if c < 0x20 || c > 0x7e {
			return 0, fmt.Errorf("%w: %q", ErrTagInvalid, s)
		}
		t = t<<8 | Tag(c)
	}
	return t, nil
}

// MustParseTag is like ParseTag but panics if s is not a valid tag.
// It is intended for tag literals known at compile time.
func MustParseTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the four characters of the tag, including any padding.
func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// Compare returns -1, 0 or +1 ordering tags by their integer value.
func (t Tag) Compare(other Tag) int {
	return cmp.Compare(t, other)
}

// OpenType returns the tag in go-text's representation.
func (t Tag) OpenType() opentype.Tag {
	return opentype.Tag(t)
}
