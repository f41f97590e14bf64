package errors

import "fmt"

// HTTPError carries a status code alongside a user-facing message.
// Delivery-layer mapError functions translate domain errors into these.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status for err, defaulting to 500.
func StatusCode(err error) int {
	if he, ok := err.(*HTTPError); ok {
		return he.Code
	}
	return 500
}
