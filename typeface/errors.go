package typeface

import (
	"errors"
	"fmt"
)

// Sentinel errors for the typeface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")

	// ErrEmptyFaces is returned when no faces are provided to MultiFace.
	ErrEmptyFaces = errors.New("typeface: faces cannot be empty")

	// ErrNotFound is returned when no registered font matches an Options.
	ErrNotFound = errors.New("typeface: no matching font")

	// ErrNilSource is returned when registering a nil FontSource.
	ErrNilSource = errors.New("typeface: nil font source")

	// ErrClosed is returned when a closed FontSource is asked for data it
	// released.
	ErrClosed = errors.New("typeface: font source is closed")
)

// NotFoundError reports the family and style that could not be resolved.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Family string
	Style  string
}

func (e *NotFoundError) Error() string {
	if e.Style == "" {
		return fmt.Sprintf("typeface: no font for family %q", e.Family)
	}
	return fmt.Sprintf("typeface: no font for family %q style %q", e.Family, e.Style)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
