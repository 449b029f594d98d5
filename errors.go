package orx

import (
	"errors"
	"fmt"
)

// Error conditions of the entry parser. Only a missing emoji code may be fatal
// to a document; all other conditions are recoverable and are reported to an
// error handler, if one is installed.
var (
	// ErrMalformedLine is reported for a line which does not open an entry.
	ErrMalformedLine = errors.New("malformed line")
	// ErrMissingRequiredField is reported if a decoder's mandatory field is absent.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrUnknownKey is reported for a key=value pair with an unrecognized key.
	ErrUnknownKey = errors.New("unknown key")
	// ErrMissingCode is the condition of an emoji entry without a code.
	ErrMissingCode = fmt.Errorf("%w: code", ErrMissingRequiredField)
)

// DecodeError is a positioned error raised while decoding an entry.
type DecodeError struct {
	Line  int    // physical line number, 1-based
	Kind  Kind   // entry kind, NoKind for lines not opening an entry
	Field string // offending field or key, if any
	Err   error  // underlying condition
}

func (e *DecodeError) Error() string {
	var what string
	if e.Kind != NoKind {
		what = e.Kind.String() + ": "
	}
	if e.Field != "" {
		return fmt.Sprintf("line %d: %s%v (%s)", e.Line, what, e.Err, e.Field)
	}
	return fmt.Sprintf("line %d: %s%v", e.Line, what, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
