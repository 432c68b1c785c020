package monitor

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the fetch pipeline. Match them with errors.Is.
var (
	ErrRequest      = errors.New("request failed")
	ErrStatus       = errors.New("status code")
	ErrDecode       = errors.New("decode failure")
	ErrUnexpected   = errors.New("unexpected")
	ErrShape        = errors.New("unexpected data format or no data")
	ErrMissingField = errors.New("missing field")
)

// FetchError is a tagged fetch failure.
type FetchError struct {
	Kind       error
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == ErrStatus {
		return fmt.Sprintf("%s %d", e.Kind, e.StatusCode)
	}
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// MissingFieldError reports a required field absent from a raw entry
// during strict projection.
type MissingFieldError struct {
	Position int
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %q in entry %d", ErrMissingField, e.Field, e.Position)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
