package diagnostic

import (
	"errors"
	"strings"
)

// FailureEnum is the legacy error code attached to every failure notice.
const FailureEnum = -1

// Notifications is the notification block of a generation report.
type Notifications struct {
	HasError bool `json:"has_error" yaml:"has_error"`
	// Exception keeps the captured failure for diagnostics. It is not serialised;
	// Errors carries its human-readable form.
	Exception error    `json:"-" yaml:"-"`
	Warnings  []Notice `json:"warnings" yaml:"warnings"`
	Errors    []Notice `json:"errors" yaml:"errors"`
}

// Notice is a single structured warning or error entry.
type Notice struct {
	Enum    int    `json:"enum" yaml:"enum"`
	Message string `json:"message" yaml:"message"`
}

// Success returns an empty notification block.
func Success() Notifications {
	return Notifications{
		Warnings: []Notice{},
		Errors:   []Notice{},
	}
}

// Failure returns a notification block describing err.
func Failure(err error) Notifications {
	return Notifications{
		HasError:  true,
		Exception: err,
		Warnings:  []Notice{},
		Errors: []Notice{{
			Enum:    FailureEnum,
			Message: err.Error(),
		}},
	}
}

// Kind returns the taxonomy kind of the captured failure.
func (n Notifications) Kind() Kind {
	if !n.HasError {
		return KindUnknown
	}

	return KindOf(n.Exception)
}

// Err returns a combined error from all error notices, or nil if there are none.
func (n Notifications) Err() error {
	if !n.HasError {
		return nil
	}

	if n.Exception != nil {
		return n.Exception
	}

	parts := make([]string, 0, len(n.Errors))
	for _, e := range n.Errors {
		parts = append(parts, e.Message)
	}

	return errors.New(strings.Join(parts, "; "))
}
