package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedDelimiters = errors.New("missing '(' or ')'")
	ErrWrongFieldCount     = errors.New("expected exactly three fields")
	ErrInvalidNumber       = errors.New("field is not a number")
)

// ParseError describes why a color spec was rejected.
type ParseError struct {
	Spec string
	// Kind is one of ErrMalformedDelimiters, ErrWrongFieldCount or ErrInvalidNumber.
	Kind error
	// Field is the offending field for ErrInvalidNumber.
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Kind == ErrInvalidNumber {
		return fmt.Sprintf("parse color %q: %v: %q", e.Spec, e.Kind, e.Field)
	}
	return fmt.Sprintf("parse color %q: %v", e.Spec, e.Kind)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Parse reads the first "(r,g,b)" group in spec. Text outside the parentheses
// is ignored. Channels are not range checked.
//
// Fields use Go float syntax, so hex floats and digit underscores are
// accepted. A value that overflows float32 is ErrInvalidNumber.
func Parse(spec string) (RGB, error) {
	open := strings.IndexByte(spec, '(')
	if open == -1 {
		return RGB{}, &ParseError{Spec: spec, Kind: ErrMalformedDelimiters}
	}
	closing := strings.IndexByte(spec[open+1:], ')')
	if closing == -1 {
		return RGB{}, &ParseError{Spec: spec, Kind: ErrMalformedDelimiters}
	}

	fields := strings.Split(spec[open+1:open+1+closing], ",")
	if len(fields) != 3 {
		return RGB{}, &ParseError{Spec: spec, Kind: ErrWrongFieldCount}
	}

	var channels [3]float32
	for i, field := range fields {
		field = strings.TrimSpace(field)
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return RGB{}, &ParseError{Spec: spec, Kind: ErrInvalidNumber, Field: field, Err: err}
		}
		channels[i] = float32(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(spec string) RGB {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}
