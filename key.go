package fontopts

import (
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Key returns a canonical encoding of o.
//
// Two Options have the same Key exactly when Equal reports true, so Key can
// index a map of resolved typefaces. The format is not stable across
// versions and must not be persisted.
func (o Options) Key() string {
	var b strings.Builder
	b.Grow(96)

	b.WriteString("n=")
	b.WriteString(strconv.Quote(o.name))
	b.WriteString(";s=")
	b.WriteString(strconv.Quote(o.style))

	b.WriteString(";tf=")
	if o.typeface == nil {
		b.WriteByte('-')
	} else {
		b.WriteString(strconv.FormatUint(o.typeface.ID(), 10))
	}

	b.WriteString(";fb=[")
	for i, f := range o.fallbacks {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(f))
	}
	b.WriteByte(']')

	b.WriteString(";mk=")
	b.WriteString(strconv.Itoa(int(o.metricsKind)))

	b.WriteString(";h=")
	writeOptional(&b, o.height, o.height > 0)
	b.WriteString(";ph=")
	writeOptional(&b, o.pointHeight, o.pointHeight > 0)
	b.WriteString(";tr=")
	writeFloat(&b, o.tracking)
	b.WriteString(";hs=")
	writeFloat(&b, o.HorizontalScale())
	b.WriteString(";as=")
	writeOptional(&b, o.ascent, o.ascentSet)
	b.WriteString(";ds=")
	writeOptional(&b, o.descent, o.descentSet)

	b.WriteString(";fe=")
	b.WriteString(strconv.FormatBool(o.FallbackEnabled()))
	b.WriteString(";u=")
	b.WriteString(strconv.FormatBool(o.underlined))

	b.WriteString(";v=[")
	for i, v := range o.variations {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v.Tag), 16))
		b.WriteByte(':')
		writeFloat(&b, v.Value)
	}
	b.WriteByte(']')

	return b.String()
}

// Hash returns a 64-bit hash of Key.
func (o Options) Hash() uint64 {
	return xxh3.HashString(o.Key())
}

// String returns Key wrapped for display.
func (o Options) String() string {
	return "fontopts.Options{" + o.Key() + "}"
}

func writeOptional(b *strings.Builder, x float32, ok bool) {
	if !ok {
		b.WriteByte('-')
		return
	}
	writeFloat(b, x)
}

func writeFloat(b *strings.Builder, x float32) {
	if x == 0 {
		x = 0 // fold -0 into 0, Compare treats them as equal
	}
	b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
}
