package sentry

import "fmt"

// APIError is a non-2xx response from the Sentry API. The raw body is kept
// so the caller can diagnose upstream problems.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sentry api error: %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// DecodeError is a 2xx response whose body is not parseable JSON or does not
// have the shape the calling tool expects.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed sentry api response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
