package hl

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColon is returned when a field binding has no ':' between
	// the field index and the color.
	ErrMissingColon = errors.New("missing : between field and color")
	// ErrSkipNotFound is returned when a line doesn't contain the skip
	// pattern.
	ErrSkipNotFound = errors.New("skip not found")
	// ErrRenderSize is returned when rendering a size color that wasn't
	// resolved to a concrete color first.
	ErrRenderSize = errors.New("size color can't be rendered directly")
)

// UnknownColorError reports a color description that doesn't match any
// known color.
type UnknownColorError struct {
	Color string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %s", e.Color)
}

// IntParseError reports a malformed integer in a field index or in the
// arguments of fixed() and rgb().
type IntParseError struct {
	Input string
	Err   error
}

func (e *IntParseError) Error() string {
	return fmt.Sprintf("parsing integer %q: %v", e.Input, e.Err)
}

func (e *IntParseError) Unwrap() error { return e.Err }

// SizeParseError reports a field that was bound to the size color but
// doesn't hold a byte quantity.
type SizeParseError struct {
	Input string
	Err   error
}

func (e *SizeParseError) Error() string {
	return fmt.Sprintf("parsing size %q: %v", e.Input, e.Err)
}

func (e *SizeParseError) Unwrap() error { return e.Err }

// AnsiFormatError reports a failure while formatting an escape sequence.
type AnsiFormatError struct {
	Err error
}

func (e *AnsiFormatError) Error() string {
	return fmt.Sprintf("ANSI fmt error: %v", e.Err)
}

func (e *AnsiFormatError) Unwrap() error { return e.Err }
