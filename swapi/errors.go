package swapi

import (
	"errors"
	"fmt"
)

// RequestFailedMessage is the message carried by every RequestError.
const RequestFailedMessage = "Something went wrong!!!"

// ErrInvalidResponse indicates the API answered 2xx but without a results list.
var ErrInvalidResponse = errors.New("invalid response from SWAPI: missing results")

// RequestError is returned when the API responds with a non-2xx status.
type RequestError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface. The text is fixed regardless of status.
func (e *RequestError) Error() string {
	return RequestFailedMessage
}

// Detail returns a diagnostic description including the status code.
func (e *RequestError) Detail() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError checks if the API failed on its side
func (e *RequestError) IsServerError() bool {
	return e.StatusCode >= 500
}
