package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrFetchFailed matches every [FetchError] via errors.Is.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidEndpoint is wrapped when the endpoint is not a usable URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrMalformedResponse is wrapped when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")
)

// FetchError describes a failed fetch.
type FetchError struct {
	// Endpoint is the URL the request was sent to.
	Endpoint string

	// StatusCode is the HTTP status of the response, or 0 when no response
	// was received.
	StatusCode int

	// Err is the underlying cause: a transport error, one of the status
	// sentinels above, or ErrMalformedResponse.
	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s: status %d: %v", ErrFetchFailed, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: GET %s: %v", ErrFetchFailed, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetchFailed) hold for any *FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
