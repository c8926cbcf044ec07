package fontopts

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// DefaultHeight is the height used by resolvers when Options sets neither a
// height nor a point height.
const DefaultHeight float32 = 14

// Typeface is a handle to a concrete, already loaded typeface.
//
// Handles are shared between any number of Options values and must be safe
// for concurrent reads. ID must be unique among live typefaces in the
// process; Options compares handles by it.
type Typeface interface {
	// Name returns the family name, e.g. "Consolas".
	Name() string
	// Style returns the style name, e.g. "Bold Italic".
	Style() string
	// ID returns the process-unique identity of the typeface.
	ID() uint64
}

// MetricsKind selects the convention used to measure text.
type MetricsKind int

const (
	// MetricsPortable gives the same fractional metrics on every platform.
	MetricsPortable MetricsKind = iota
	// MetricsLegacy gives pixel-rounded metrics as older platform
	// renderers reported them.
	MetricsLegacy
)

// String returns the string representation of the metrics kind.
func (k MetricsKind) String() string {
	switch k {
	case MetricsPortable:
		return "Portable"
	case MetricsLegacy:
		return "Legacy"
	default:
		return unknownStr
	}
}

// StyleFlags is a compact bold/italic/underline style description.
type StyleFlags uint8

const (
	// Plain is the regular style.
	Plain StyleFlags = 0
	// Bold selects a bold style.
	Bold StyleFlags = 1 << (iota - 1)
	// Italic selects an italic style.
	Italic
	// Underlined turns on underlining.
	Underlined
)

// StyleName returns the style string the flags describe:
// "Bold Italic", "Bold", "Italic" or "Regular". Underlined is ignored.
func (f StyleFlags) StyleName() string {
	switch {
	case f&Bold != 0 && f&Italic != 0:
		return "Bold Italic"
	case f&Bold != 0:
		return "Bold"
	case f&Italic != 0:
		return "Italic"
	default:
		return "Regular"
	}
}

// String returns the flags joined with "|", or "Plain".
func (f StyleFlags) String() string {
	if f == Plain {
		return "Plain"
	}
	s := ""
	for _, b := range []struct {
		flag StyleFlags
		name string
	}{{Bold, "Bold"}, {Italic, "Italic"}, {Underlined, "Underlined"}} {
		if f&b.flag == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += b.name
	}
	if s == "" {
		return unknownStr
	}
	return s
}
