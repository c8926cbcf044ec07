package typeface

import (
	"slices"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/fontopts"
	"github.com/gogpu/fontopts/internal/cache"
)

// regularStyle is the style picked when Options name a family but no style.
const regularStyle = "Regular"

// Resolver selects registered FontSources for fontopts.Options and caches
// the resulting faces by Options.Key.
//
// Families and styles match case-insensitively (Unicode case folding).
//
// Resolver is safe for concurrent use.
type Resolver struct {
	mu       sync.RWMutex
	families map[string]*family // keyed by folded family name
	order    []string           // family display names, registration order

	faces  *cache.Sharded[Face]
	config resolverConfig
}

// family holds the registered styles of one family in registration order.
type family struct {
	name    string
	sources []*FontSource
}

// NewResolver creates an empty Resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	config := defaultResolverConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Resolver{
		families: make(map[string]*family),
		faces:    cache.New[Face](config.cacheCapacity),
		config:   config,
	}
}

// Register adds sources to the registry. A source with the same family and
// style as an earlier one replaces it. Cached faces are dropped.
func (r *Resolver) Register(sources ...*FontSource) error {
	for _, src := range sources {
		if src == nil {
			return ErrNilSource
		}
	}

	r.mu.Lock()
	for _, src := range sources {
		key := fold(src.Name())
		fam, ok := r.families[key]
		if !ok {
			fam = &family{name: src.Name()}
			r.families[key] = fam
			r.order = append(r.order, src.Name())
		}
		style := fold(src.Style())
		if i := slices.IndexFunc(fam.sources, func(s *FontSource) bool { return fold(s.Style()) == style }); i >= 0 {
			fam.sources[i] = src
		} else {
			fam.sources = append(fam.sources, src)
		}
		fontopts.Logger().Debug("typeface: registered", "family", src.Name(), "style", src.Style(), "id", src.ID())
	}
	r.mu.Unlock()

	r.faces.Clear()
	return nil
}

// Families returns the registered family names in registration order.
func (r *Resolver) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Lookup returns the source registered for family and style. An empty style
// selects the family's Regular style, or its first registered style.
func (r *Resolver) Lookup(familyName, style string) (*FontSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.lookupLocked(familyName, style)
	return src, src != nil
}

// Resolve returns a Face for opts.
//
// A pinned *FontSource is used directly; any other pinned fontopts.Typeface
// is looked up by its name and style. Otherwise the family is looked up by
// name (the default family when empty) and style. When that fails and
// fallback is enabled, the same family in another style, then each of
// opts.Fallbacks, then the default family are tried in turn.
//
// With fallback enabled and at least one fallback family available, the
// result is a *MultiFace that measures runes missing from the primary font
// with the fallback fonts.
//
// Results are cached. Errors are not.
func (r *Resolver) Resolve(opts fontopts.Options) (Face, error) {
	return r.faces.GetOrCreate(opts.Key(), func() (Face, error) {
		fontopts.Logger().Debug("typeface: cache miss", "options", opts.String())
		return r.resolve(opts)
	})
}

// CacheStats returns statistics of the resolved-face cache.
func (r *Resolver) CacheStats() cache.Stats {
	return r.faces.Stats()
}

// ClearCache drops all cached faces.
func (r *Resolver) ClearCache() {
	r.faces.Clear()
}

func (r *Resolver) resolve(opts fontopts.Options) (Face, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	primary, err := r.primaryLocked(opts)
	if err != nil {
		return nil, err
	}
	face := primary.Face(opts)
	if !opts.FallbackEnabled() {
		return face, nil
	}

	faces := []Face{face}
	seen := map[*FontSource]bool{primary: true}
	for _, name := range r.fallbackFamilies(opts) {
		src := r.lookupLocked(name, opts.Style())
		if src == nil {
			src = r.lookupLocked(name, "")
		}
		if src == nil || seen[src] {
			continue
		}
		seen[src] = true
		faces = append(faces, src.Face(opts))
	}
	if len(faces) == 1 {
		return face, nil
	}
	multi, err := NewMultiFace(faces...)
	if err != nil {
		return nil, err
	}
	return multi, nil
}

// primaryLocked picks the main source for opts. Caller must hold r.mu.
func (r *Resolver) primaryLocked(opts fontopts.Options) (*FontSource, error) {
	if tf := opts.Typeface(); tf != nil {
		if src, ok := tf.(*FontSource); ok {
			return src, nil
		}
		if src := r.lookupLocked(tf.Name(), tf.Style()); src != nil {
			return src, nil
		}
		return nil, &NotFoundError{Family: tf.Name(), Style: tf.Style()}
	}

	name := opts.Name()
	if name == "" {
		name = r.config.defaultFamily
	}
	if src := r.lookupLocked(name, opts.Style()); src != nil {
		return src, nil
	}
	if !opts.FallbackEnabled() {
		return nil, &NotFoundError{Family: name, Style: opts.Style()}
	}

	if src := r.lookupLocked(name, ""); src != nil {
		fontopts.Logger().Warn("typeface: style substituted",
			"family", name, "want", opts.Style(), "got", src.Style())
		return src, nil
	}
	for _, fb := range r.fallbackFamilies(opts) {
		src := r.lookupLocked(fb, opts.Style())
		if src == nil {
			src = r.lookupLocked(fb, "")
		}
		if src != nil {
			fontopts.Logger().Warn("typeface: family substituted",
				"want", name, "got", src.Name())
			return src, nil
		}
	}
	return nil, &NotFoundError{Family: name, Style: opts.Style()}
}

// fallbackFamilies returns opts.Fallbacks followed by the default family.
func (r *Resolver) fallbackFamilies(opts fontopts.Options) []string {
	names := opts.Fallbacks()
	if r.config.defaultFamily != "" {
		names = append(names, r.config.defaultFamily)
	}
	return names
}

// lookupLocked finds a source by family and style. Caller must hold r.mu.
func (r *Resolver) lookupLocked(familyName, style string) *FontSource {
	if familyName == "" {
		return nil
	}
	fam, ok := r.families[fold(familyName)]
	if !ok || len(fam.sources) == 0 {
		return nil
	}

	if style == "" {
		if src := fam.find(fold(regularStyle)); src != nil {
			return src
		}
		return fam.sources[0]
	}
	return fam.find(fold(style))
}

func (f *family) find(foldedStyle string) *FontSource {
	for _, src := range f.sources {
		if fold(src.Style()) == foldedStyle {
			return src
		}
	}
	return nil
}

// fold returns the case-folded form of s. A new Caser is made per call
// because Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
