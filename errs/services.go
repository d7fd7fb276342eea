package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Errors from the third-party services contact notifications go through.
var (
	ErrRateLimitExceeded  = errors.New("rate limit exceeded")
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUpstreamRejected   = errors.New("request rejected")
)

// NewUpstreamError classifies a failed response from an external service.
// They never reach clients directly, so the status is always 502.
func NewUpstreamError(service string, status int, message string) *ApiErr {
	sentinel := ErrUpstreamRejected
	switch {
	case status == http.StatusTooManyRequests:
		sentinel = ErrRateLimitExceeded
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		sentinel = ErrInvalidAPIKey
	case status >= http.StatusInternalServerError:
		sentinel = ErrServiceUnavailable
	}

	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        fmt.Errorf("%s %w", service, sentinel),
		Details:    fmt.Sprintf("status %d: %s", status, message),
	}
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}
