package holdsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx response, carrying the service's
// error envelope alongside the HTTP status.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("holdsdk: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func apiStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool { return apiStatus(err) == http.StatusUnauthorized }

// IsForbidden reports whether err is a 403 from the service.
func IsForbidden(err error) bool { return apiStatus(err) == http.StatusForbidden }

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return apiStatus(err) == http.StatusNotFound }

// IsConflict reports whether err is a 409 from the service.
func IsConflict(err error) bool { return apiStatus(err) == http.StatusConflict }

// IsValidation reports whether err is a 422 from the service.
func IsValidation(err error) bool { return apiStatus(err) == http.StatusUnprocessableEntity }
