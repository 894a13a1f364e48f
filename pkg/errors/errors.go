package errors

import "fmt"

// HTTPError is a transport-facing error carrying the status code the
// delivery layer wants the response writer to use.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
