package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies gateway failures so callers can react without parsing messages.
type Kind int

const (
	KindUnavailable  Kind = iota // 5xx, timeouts and transport errors
	KindUnauthorized             // 401 and 403: wrong API key
	KindNotFound                 // 404: unknown instance
	KindRateLimited              // 429
	KindRejected                 // any other 4xx
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "rejected"
	default:
		return "unavailable"
	}
}

// Error is returned by Client for every failed call.
type Error struct {
	Kind   Kind
	Status int    // HTTP status, 0 for transport errors
	Body   string // Response body, truncated
	Err    error  // Transport error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("gateway %s: status %d: %s", e.Kind, e.Status, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, and false when err did not come from the gateway.
func KindOf(err error) (Kind, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind, true
	}
	return 0, false
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 400 && status < 500:
		return KindRejected
	default:
		return KindUnavailable
	}
}
