package clinicapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the clinic API. Message carries the
// upstream "message" field so it can be shown to the caller unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clinic api: %d %s", e.Status, e.Message)
}

// StatusOf returns the upstream status of err, or 0 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether the clinic API rejected the caller's token.
func IsUnauthorized(err error) bool {
	s := StatusOf(err)
	return s == http.StatusUnauthorized || s == http.StatusForbidden
}

// IsNotFound reports whether the clinic API answered 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
