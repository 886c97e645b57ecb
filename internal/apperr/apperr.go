// Package apperr defines the error type used across pomo
package apperr

import "fmt"

// Error is an application error with a user-facing message. The message may
// contain format verbs which are filled in by Fmt.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches copies of the same sentinel produced by Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t.Message == e.Message
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that wraps cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   cause,
	}
}
