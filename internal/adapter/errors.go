package adapter

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching of the three outcome kinds.
var (
	ErrTransport = errors.New("transport error")
	ErrServer    = errors.New("server error")
	ErrSchema    = errors.New("unexpected response")
)

// TransportError means the request could not be completed or the response
// could not be parsed as JSON. Error returns the underlying description.
type TransportError struct {
	Op  string
	Err error
}

func newTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// ServerError carries the backend's "error" message verbatim.
type ServerError struct {
	Op      string
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// SchemaError means the body had no "error" but lacked the success shape.
// Body is the raw response so it can be shown for diagnosis.
type SchemaError struct {
	Reason string
	Body   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Body)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
