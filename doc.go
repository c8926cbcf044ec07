// Package fontopts describes the font a piece of text wants to be drawn with.
//
// # Overview
//
// An [Options] value is a small immutable descriptor: family name, style,
// size, tracking, horizontal scale, underline, metric overrides, variable-font
// axis settings and fallback behavior. It does not load or render anything.
// A typeface resolver (see package typeface) turns an Options into a concrete
// face.
//
// # Quick Start
//
//	import "github.com/gogpu/fontopts"
//
//	opts := fontopts.NewHeight(12).
//	    WithName("Inter").
//	    WithUnderline(true).
//	    WithVariation(fontopts.TagWeight, 650)
//
//	h, ok := opts.Height()       // 12, true
//	_, ok = opts.PointHeight()   // false: height and point height exclude each other
//
// # Value Semantics
//
// Every With method returns a new Options and leaves the receiver untouched.
// The zero Options holds the defaults, so
//
//	var opts fontopts.Options
//
// is ready to use and equal to [New]. Options values are safe to share
// between goroutines without locking.
//
// # Comparison
//
// Options are totally ordered by [Options.Compare], over every field in a
// fixed order. [Options.Key] returns a canonical string for use as a map key
// and [Options.Hash] a 64-bit hash of it.
//
// # Contract Violations
//
// Passing values the descriptor cannot represent (a non-positive size, a name
// while a typeface is pinned) is a programmer error. The method logs a
// warning through [Logger] and returns a well-defined result. Building with
// the fontdebug tag, or calling [SetStrictContracts], turns these into
// panics.
package fontopts
