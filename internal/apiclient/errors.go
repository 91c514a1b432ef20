package apiclient

import (
	"errors"
	"fmt"
)

var (
	ErrTransport        = errors.New("transport failure")
	ErrDecode           = errors.New("deserialization failure")
	ErrUnsupportedParam = errors.New("unsupported query parameter value")
)

type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}
