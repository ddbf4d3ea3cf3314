package diagnostic

import (
	"errors"
	"fmt"
)

// Error is a failure tagged with its taxonomy kind and the operation that raised it.
type Error struct {
	Kind Kind
	// Op names the step that failed, e.g. "copy static assets".
	Op  string
	Err error
}

// New returns a kind-tagged error for op wrapping err.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a kind-tagged error from a format string.
func Errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the same kind.
func (e *Error) Is(target error) bool {
	s, ok := target.(*sentinel)

	return ok && s.kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	return KindUnknown
}

// Wrap tags err with kind unless it already carries one.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		return err
	}

	return New(kind, op, err)
}
