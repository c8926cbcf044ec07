package fontopts

import (
	"log/slog"
	"math"
	"slices"
)

// Options describes a font to be resolved into a concrete typeface.
//
// Options is an immutable value: the With methods return a modified copy
// and never touch the receiver. The zero value holds the defaults and is
// equal to [New].
//
// Options is safe for concurrent use.
type Options struct {
	name     string
	style    string
	typeface Typeface

	// fallbacks and variations are never written after they are assigned,
	// so copies of an Options may share them.
	fallbacks  []string
	variations []Variation

	metricsKind MetricsKind

	height      float32 // > 0 when set
	pointHeight float32 // > 0 when set
	tracking    float32

	hscale    float32
	hscaleSet bool

	ascent     float32
	descent    float32
	ascentSet  bool
	descentSet bool

	noFallback bool
	underlined bool
}

// New returns the default options: no family, no size, fallback enabled.
func New() Options {
	return Options{}
}

// NewHeight returns the default options with the given height.
func NewHeight(height float32) Options {
	return New().WithHeight(height)
}

// NewStyled returns options with the given height and a style decoded from
// flags. Bold and Italic select the style name, Underlined turns on the
// underline.
func NewStyled(height float32, flags StyleFlags) Options {
	return NewHeight(height).
		WithStyle(flags.StyleName()).
		WithUnderline(flags&Underlined != 0)
}

// NewNamed is like NewStyled and also sets the family name.
func NewNamed(name string, height float32, flags StyleFlags) Options {
	return NewStyled(height, flags).WithName(name)
}

// NewFamily returns options with the given family name, style name and height.
func NewFamily(name, style string, height float32) Options {
	return New().WithName(name).WithStyle(style).WithHeight(height)
}

// ForTypeface returns options pinned to tf. The name and style are taken
// from the typeface.
func ForTypeface(tf Typeface) Options {
	return New().WithTypeface(tf)
}

// WithName returns a copy with the family name set to name.
//
// Calling WithName while a typeface is pinned is a contract violation; the
// receiver is returned unchanged. Unpin with WithTypeface(nil) first.
func (o Options) WithName(name string) Options {
	if o.typeface != nil {
		contractViolation("WithName", "name is ignored while a typeface is pinned",
			slog.String("name", name))
		return o
	}
	o.name = name
	return o
}

// WithStyle returns a copy with the style name set to style.
//
// Calling WithStyle while a typeface is pinned is a contract violation; the
// receiver is returned unchanged.
func (o Options) WithStyle(style string) Options {
	if o.typeface != nil {
		contractViolation("WithStyle", "style is ignored while a typeface is pinned",
			slog.String("style", style))
		return o
	}
	o.style = style
	return o
}

// WithTypeface returns a copy pinned to tf, with name and style taken from
// the typeface. A pinned typeface takes precedence over name lookup.
//
// The name and style must be empty before pinning; setting them first is a
// contract violation and the typeface's values replace them. Replacing one
// pinned typeface with another is allowed. WithTypeface(nil) unpins and keeps
// the current name and style.
func (o Options) WithTypeface(tf Typeface) Options {
	if tf == nil {
		o.typeface = nil
		return o
	}
	if o.typeface == nil && (o.name != "" || o.style != "") {
		contractViolation("WithTypeface", "name and style must be empty before pinning a typeface",
			slog.String("name", o.name), slog.String("style", o.style))
	}
	o.name = tf.Name()
	o.style = tf.Style()
	o.typeface = tf
	return o
}

// WithFallbacks returns a copy with the preferred fallback families, tried in
// order when the primary family is unavailable. The slice is copied.
func (o Options) WithFallbacks(families []string) Options {
	o.fallbacks = slices.Clone(families)
	return o
}

// WithFallbackEnabled returns a copy with automatic fallback turned on or off.
func (o Options) WithFallbackEnabled(enabled bool) Options {
	o.noFallback = !enabled
	return o
}

// WithHeight returns a copy with the height set, in application units, and
// the point height cleared.
//
// height must be positive and finite; anything else is a contract violation
// and the receiver is returned unchanged.
func (o Options) WithHeight(height float32) Options {
	if !validSize(height) {
		contractViolation("WithHeight", "height must be positive",
			slog.Float64("height", float64(height)))
		return o
	}
	o.height = height
	o.pointHeight = 0
	return o
}

// WithPointHeight returns a copy with the height set in points and the
// application-unit height cleared.
//
// points must be positive and finite; anything else is a contract violation
// and the receiver is returned unchanged.
func (o Options) WithPointHeight(points float32) Options {
	if !validSize(points) {
		contractViolation("WithPointHeight", "point height must be positive",
			slog.Float64("points", float64(points)))
		return o
	}
	o.pointHeight = points
	o.height = 0
	return o
}

// WithTracking returns a copy with the extra inter-character spacing, as a
// fraction of the font size. Also known as the kerning factor.
func (o Options) WithTracking(tracking float32) Options {
	o.tracking = tracking
	return o
}

// WithHorizontalScale returns a copy with the horizontal stretch factor.
func (o Options) WithHorizontalScale(scale float32) Options {
	o.hscale = scale
	o.hscaleSet = true
	return o
}

// WithUnderline returns a copy with underlining turned on or off.
func (o Options) WithUnderline(underlined bool) Options {
	o.underlined = underlined
	return o
}

// WithMetricsKind returns a copy using the given metrics convention.
// An unknown kind is a contract violation and the receiver is returned
// unchanged.
func (o Options) WithMetricsKind(kind MetricsKind) Options {
	if kind != MetricsPortable && kind != MetricsLegacy {
		contractViolation("WithMetricsKind", "unknown metrics kind",
			slog.Int("kind", int(kind)))
		return o
	}
	o.metricsKind = kind
	return o
}

// WithAscentOverride returns a copy whose ascent is fraction times the font
// size in points, instead of the typeface's own ascent.
//
// A fraction that is negative, NaN or +Inf is a contract violation and
// clears the override.
func (o Options) WithAscentOverride(fraction float32) Options {
	if !validFraction(fraction) {
		contractViolation("WithAscentOverride", "override must be finite and non-negative",
			slog.Float64("fraction", float64(fraction)))
		return o.WithoutAscentOverride()
	}
	o.ascent = fraction
	o.ascentSet = true
	return o
}

// WithoutAscentOverride returns a copy using the typeface's own ascent.
func (o Options) WithoutAscentOverride() Options {
	o.ascent = 0
	o.ascentSet = false
	return o
}

// WithDescentOverride returns a copy whose descent is fraction times the
// font size in points, instead of the typeface's own descent.
//
// A fraction that is negative, NaN or +Inf is a contract violation and
// clears the override.
func (o Options) WithDescentOverride(fraction float32) Options {
	if !validFraction(fraction) {
		contractViolation("WithDescentOverride", "override must be finite and non-negative",
			slog.Float64("fraction", float64(fraction)))
		return o.WithoutDescentOverride()
	}
	o.descent = fraction
	o.descentSet = true
	return o
}

// WithoutDescentOverride returns a copy using the typeface's own descent.
func (o Options) WithoutDescentOverride() Options {
	o.descent = 0
	o.descentSet = false
	return o
}

// WithVariations returns a copy with the variable-font axis settings
// replaced by vars. If vars repeats a tag, the entry keeps the position of
// the first occurrence and the value of the last.
func (o Options) WithVariations(vars []Variation) Options {
	var out []Variation
	for _, v := range vars {
		out = setVariation(out, v.Tag, v.Value)
	}
	o.variations = out
	return o
}

// WithVariation returns a copy with the axis tag set to value. An existing
// entry for tag is updated in place, otherwise the setting is appended.
func (o Options) WithVariation(tag Tag, value float32) Options {
	o.variations = setVariation(slices.Clone(o.variations), tag, value)
	return o
}

// setVariation updates or appends tag in vars, which the caller owns.
func setVariation(vars []Variation, tag Tag, value float32) []Variation {
	if i := slices.IndexFunc(vars, func(v Variation) bool { return v.Tag == tag }); i >= 0 {
		vars[i].Value = value
		return vars
	}
	return append(vars, Variation{Tag: tag, Value: value})
}

// Name returns the family name.
func (o Options) Name() string { return o.name }

// Style returns the style name.
func (o Options) Style() string { return o.style }

// Typeface returns the pinned typeface, or nil.
func (o Options) Typeface() Typeface { return o.typeface }

// Fallbacks returns a copy of the preferred fallback families.
func (o Options) Fallbacks() []string { return slices.Clone(o.fallbacks) }

// FallbackEnabled reports whether automatic fallback is allowed.
func (o Options) FallbackEnabled() bool { return !o.noFallback }

// Height returns the height in application units, if set.
func (o Options) Height() (float32, bool) { return o.height, o.height > 0 }

// PointHeight returns the height in points, if set.
func (o Options) PointHeight() (float32, bool) { return o.pointHeight, o.pointHeight > 0 }

// Tracking returns the extra inter-character spacing factor.
func (o Options) Tracking() float32 { return o.tracking }

// HorizontalScale returns the horizontal stretch factor. The default is 1.
func (o Options) HorizontalScale() float32 {
	if !o.hscaleSet {
		return 1
	}
	return o.hscale
}

// Underlined reports whether text is underlined.
func (o Options) Underlined() bool { return o.underlined }

// MetricsKind returns the metrics convention.
func (o Options) MetricsKind() MetricsKind { return o.metricsKind }

// AscentOverride returns the ascent override fraction, if set.
func (o Options) AscentOverride() (float32, bool) { return o.ascent, o.ascentSet }

// DescentOverride returns the descent override fraction, if set.
func (o Options) DescentOverride() (float32, bool) { return o.descent, o.descentSet }

// Variations returns a copy of the variable-font axis settings.
func (o Options) Variations() []Variation { return slices.Clone(o.variations) }

// Variation returns the value set for the axis tag, if any.
func (o Options) Variation(tag Tag) (float32, bool) {
	for _, v := range o.variations {
		if v.Tag == tag {
			return v.Value, true
		}
	}
	return 0, false
}

func validSize(x float32) bool {
	return x > 0 && !math.IsInf(float64(x), 1)
}

func validFraction(x float32) bool {
	return x >= 0 && !math.IsInf(float64(x), 1)
}
