package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrUnexpectedStatus covers every non-2xx status without a sentinel of
	// its own.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedResponse is returned when a 2xx body is not the expected
	// JSON object.
	ErrMalformedResponse = errors.New("malformed backend response")
)
