package gobitflyer

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired    = errors.New("auth required")
	ErrTransport       = errors.New("transport error")
	ErrResponseDecode  = errors.New("response decode error")
	ErrIllegalEndpoint = errors.New("illegal endpoint")
)

// AuthRequiredError is returned before any network I/O when a private
// endpoint is called on a client without key or secret.
type AuthRequiredError struct {
	Endpoint string
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("auth required error: %s needs api key and secret", e.Endpoint)
}

func (e *AuthRequiredError) Is(target error) bool {
	return target == ErrAuthRequired
}

type TransportError struct {
	Method string
	Url    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.Url, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ResponseDecodeError means the server answered but the body is not UTF-8 JSON.
type ResponseDecodeError struct {
	Url        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ResponseDecodeError) Error() string {
	return fmt.Sprintf(
		"response decode error: %s (http status %d): %v",
		e.Url, e.StatusCode, e.Err,
	)
}

func (e *ResponseDecodeError) Unwrap() error {
	return e.Err
}

func (e *ResponseDecodeError) Is(target error) bool {
	return target == ErrResponseDecode
}
