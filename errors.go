package tsplib

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("tsplib: malformed line")
	// ErrType is matched by every *TypeError.
	ErrType = errors.New("tsplib: bad value")
	// ErrTruncated is matched by every *TruncationError.
	ErrTruncated = errors.New("tsplib: unexpected end of input")
	// ErrNilInstance is returned when a nil *Instance is passed in.
	ErrNilInstance = errors.New("tsplib: nil instance")
)

// FormatError reports a line that does not have the expected token layout.
type FormatError struct {
	Line int
	Text string
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("tsplib: %s", e.Msg)
	}
	return fmt.Sprintf("tsplib: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// TypeError reports a token that could not be converted to a number.
type TypeError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tsplib: line %d: %s %q: %s", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("tsplib: line %d: invalid %s %q", e.Line, e.Field, e.Value)
}

func (e *TypeError) Is(target error) bool { return target == ErrType }

func (e *TypeError) Unwrap() error { return e.Err }

// TruncationError reports input that ended before the expected line was read.
type TruncationError struct {
	Line int
	Want string
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("tsplib: line %d: unexpected end of input, expected %s", e.Line, e.Want)
}

func (e *TruncationError) Is(target error) bool { return target == ErrTruncated }
