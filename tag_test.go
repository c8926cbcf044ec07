package fontopts

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/go-text/typesetting/font/opentype"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Tag
		wantErr error
	}{
		{"four chars", "wght", TagWeight, nil},
		{"width", "wdth", TagWidth, nil},
		{"three chars padded", "wdt", Tag(0x77647420), nil},
		{"one char", "a", Tag(0x61202020), nil},
		{"empty", "", Tag(0x20202020), nil},
		{"explicit padding", "wdt ", Tag(0x77647420), nil},
		{"too long", "weight", 0, ErrTagTooLong},
		{"control byte", "wg\x01t", 0, ErrTagInvalid},
		{"non ascii", "wé", 0, ErrTagInvalid},
		{"delete byte", "\x7f", 0, ErrTagInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTag(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseTag(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTag(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTag(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestTagRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "ab", "abc", "wght", "opsz", "XHGT", "a b", "1234"} {
		want := s + strings.Repeat(" ", 4-len(s))
		if got := MustParseTag(s).String(); got != want {
			t.Errorf("MustParseTag(%q).String() = %q, want %q", s, got, want)
		}
	}
}

func TestTagFromInteger(t *testing.T) {
	if got := Tag(0x77676874).String(); got != "wght" {
		t.Errorf("Tag(0x77676874).String() = %q, want %q", got, "wght")
	}
	if got := len(Tag(0).String()); got != 4 {
		t.Errorf("len(Tag(0).String()) = %d, want 4", got)
	}
}

func TestRegisteredTags(t *testing.T) {
	for _, s := range []string{"wght", "wdth", "slnt", "ital", "opsz"} {
		t.Run(s, func(t *testing.T) {
			tag := MustParseTag(s)
			if tag.String() != s {
				t.Errorf("String() = %q, want %q", tag.String(), s)
			}
			if tag.OpenType() != opentype.MustNewTag(s) {
				t.Errorf("OpenType() = %v, want %v", tag.OpenType(), opentype.MustNewTag(s))
			}
		})
	}

	consts := map[string]Tag{
		"wght": TagWeight,
		"wdth": TagWidth,
		"slnt": TagSlant,
		"ital": TagItalic,
		"opsz": TagOpticalSize,
	}
	for s, tag := range consts {
		if MustParseTag(s) != tag {
			t.Errorf("constant for %q = %#x, want %#x", s, uint32(tag), uint32(MustParseTag(s)))
		}
	}
}

func TestMustParseTagPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustParseTag did not panic on a 5-character tag")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTagTooLong) {
			t.Errorf("panic value = %v, want ErrTagTooLong", r)
		}
	}()
	MustParseTag("abcde")
}

func TestTagCompare(t *testing.T) {
	a := MustParseTag("aaaa")
	b := MustParseTag("aaab")

	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not ordered by integer value: %d %d %d",
			a.Compare(b), b.Compare(a), a.Compare(a))
	}

	tags := []Tag{TagWidth, TagWeight, TagItalic, TagSlant, TagOpticalSize}
	slices.SortFunc(tags, Tag.Compare)
	want := []string{"ital", "opsz", "slnt", "wdth", "wght"}
	for i, tag := range tags {
		if tag.String() != want[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, tag.String(), want[i])
		}
	}

	// Tags work as map keys.
	m := map[Tag]float32{TagWeight: 700}
	if m[MustParseTag("wght")] != 700 {
		t.Error("lookup by parsed tag failed")
	}
}
