package service

import "errors"

var (
	ErrNoMessage = errors.New("no message provided")
	ErrNoImage   = errors.New("no image provided")
)

// UpstreamError marks a failure of the external model call so handlers can
// map it to a 500 instead of a client error. Never retried.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
