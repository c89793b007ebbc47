package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be rendered with.
// Delivery layers create these in mapError; pkg/response honors the status.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// NewHTTPErrorf creates a new HTTPError with a formatted message.
func NewHTTPErrorf(status int, format string, args ...any) *HTTPError {
	return &HTTPError{Status: status, Message: fmt.Sprintf(format, args...)}
}

func (e *HTTPError) Error() string {
	return e.Message
}
