package model

import "fmt"

// HTTPStatusError is returned when a remote API answers with an unexpected status code.
// Body holds the raw response body.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}
