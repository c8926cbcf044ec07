package typeface

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/fontopts"
)

var _ fontopts.Typeface = (*FontSource)(nil)

// nextSourceID hands out FontSource identities. IDs start at 1.
var nextSourceID atomic.Uint64

// FontSource represents a loaded font file.
// One FontSource can create any number of Faces for different Options.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource implements fontopts.Typeface, so it can be pinned in an
// Options with fontopts.ForTypeface.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource itself.
	addr *FontSource

	id     uint64
	data   []byte
	parsed ParsedFont

	name  string
	style string

	// heightScale converts application-unit heights to points:
	// points = height / heightScale.
	heightScale float64

	// gotext holds the go-text parse of data, used for variable-font axes.
	// Parsed lazily on first use. gotext and gotextErr are guarded by mu.
	gotextOnce sync.Once
	gotext     *font.Font
	gotextErr  error

	mu     sync.RWMutex
	closed bool

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Parsers may keep references into the bytes they parse.
	data = bytes.Clone(data)
	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		id:     nextSourceID.Add(1),
		data:   data,
		parsed: parsed,
		config: config,
	}
	s.addr = s

	s.name = extractFontName(parsed)
	s.style = config.styleName
	if s.style == "" {
		s.style = parsed.StyleName()
	}
	if s.style == "" {
		s.style = "Regular"
	}
	s.heightScale = heightScale(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the family name. It implements fontopts.Typeface.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Style returns the style name. It implements fontopts.Typeface.
func (s *FontSource) Style() string {
	s.copyCheck()
	return s.style
}

// ID returns the process-unique identity of the source.
// It implements fontopts.Typeface.
func (s *FontSource) ID() uint64 {
	s.copyCheck()
	return s.id
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Face returns a Face that measures text the way opts asks for.
// Name, style and fallback fields of opts are not consulted here; use a
// Resolver to select a source by name.
//
// Panics if s is nil (e.g. when a NewFontSource error was ignored).
func (s *FontSource) Face(opts fontopts.Options) Face {
	if s == nil {
		panic("typeface: FontSource is nil; did you check the error from NewFontSource?")
	}
	s.copyCheck()
	return newSourceFace(s, opts)
}

// Close releases the raw font data and the go-text parse used for
// variation axes. The parsed font behind Parsed stays alive while the
// source is reachable, so faces keep measuring after Close. Faces created
// after Close ignore variations and measure the default instance.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.data = nil
	s.gotext = nil
	return nil
}

// Closed reports whether Close has been called.
func (s *FontSource) Closed() bool {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// goTextFont returns the go-text parse of the font data.
func (s *FontSource) goTextFont() (*font.Font, error) {
	s.gotextOnce.Do(func() {
		s.mu.RLock()
		data := s.data
		s.mu.RUnlock()
		if data == nil {
			return
		}

		face, err := font.ParseTTF(bytes.NewReader(data))

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.gotextErr = fmt.Errorf("typeface: go-text parse of %s: %w", s.name, err)
			return
		}
		if !s.closed {
			s.gotext = face.Font
		}
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("%w: %s", ErrClosed, s.name)
	}
	return s.gotext, s.gotextErr
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("typeface: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}

// heightScale returns (ascent + descent) per point of em size. A height in
// application units covers ascent plus descent, so dividing by this ratio
// gives the size in points.
func heightScale(parsed ParsedFont) float64 {
	const ref = 1000.0
	m := parsed.Metrics(ref, HintingNone)
	k := (m.Ascent + m.Descent) / ref
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return 1
	}
	return k
}
