package backend

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by a DecodeError when a required top-level
// field is absent from an otherwise valid payload.
var ErrMissingField = errors.New("missing field")

// StatusError is returned for a non-2xx response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// DecodeError is returned when a response body does not have the
// expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
