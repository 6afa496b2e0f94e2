package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTokenMissing is returned by Login when the server answered 2xx but the
// Authorization response header carried no bearer token.
var ErrTokenMissing = errors.New("login succeeded but no bearer token was returned")

// TransportError is any failure originating from the network or HTTP layer.
// Status is the HTTP status code, or 0 when the request never completed.
// Message holds the server-supplied error message when one was present.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Status != 0:
		return fmt.Sprintf("request failed with status %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	default:
		return "request failed"
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the server answered 404 for this request.
func (e *TransportError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsNotFound reports whether err is a TransportError carrying a 404.
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.NotFound()
}
