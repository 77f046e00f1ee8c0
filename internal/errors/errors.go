// Package errors defines the API error taxonomy shared by handlers and clients.
package errors

import "net/http"

// APIError represents a structured API error with an HTTP status mapping.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Predefined errors
var (
	ErrPokemonNotFound     = &APIError{HTTPStatus: http.StatusNotFound, Code: "NOT_FOUND", Message: "Pokemon not found"}
	ErrNotAcceptable       = &APIError{HTTPStatus: http.StatusNotAcceptable, Code: "NOT_ACCEPTABLE", Message: "No acceptable language available for this description"}
	ErrRateLimited         = &APIError{HTTPStatus: http.StatusTooManyRequests, Code: "RATE_LIMITED", Message: "Rate limited by upstream service"}
	ErrUpstreamMalformed   = &APIError{HTTPStatus: http.StatusBadGateway, Code: "UPSTREAM_MALFORMED", Message: "Upstream returned an unexpected response"}
	ErrUpstreamUnavailable = &APIError{HTTPStatus: http.StatusServiceUnavailable, Code: "UPSTREAM_UNAVAILABLE", Message: "Upstream service unavailable"}
	ErrTooManyRequests     = &APIError{HTTPStatus: http.StatusTooManyRequests, Code: "TOO_MANY_REQUESTS", Message: "Too many concurrent requests"}
	ErrInternalServer      = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
)

// NewAPIError creates a new APIError based on a predefined error with a custom message.
func NewAPIError(base *APIError, message string) *APIError {
	return &APIError{
		HTTPStatus: base.HTTPStatus,
		Code:       base.Code,
		Message:    message,
	}
}

// FromUpstreamStatus maps an upstream HTTP status code to the API error taxonomy.
// 2xx statuses map to nil. Network failures and decode failures are handled
// separately by the callers (ErrUpstreamUnavailable / ErrUpstreamMalformed).
func FromUpstreamStatus(status int) *APIError {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return ErrPokemonNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrUpstreamUnavailable
	default:
		return ErrUpstreamMalformed
	}
}

// AsAPIError converts any error to an APIError, falling back to ErrInternalServer
// for errors outside the taxonomy.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return ErrInternalServer
}
