package client

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is a non-success HTTP response from the exchange. It carries
// the operation label of the call that produced it, the status code, and
// the raw response body. Transport failures (DNS, timeout, connection
// reset) are not APIErrors; they propagate from the HTTP client as-is.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crix: %s: status %d: %s", e.Op, e.StatusCode, strings.TrimSpace(e.Body))
}

// NotFound reports whether the error body describes a missing record.
// CRIX v1 has no structured error codes, so this is a substring match on
// the server's error text. Known fragility: it couples the client to the
// server's wording. Kept in one place so a structured check can replace
// it if the API ever grows one.
func (e *APIError) NotFound() bool {
	return strings.Contains(e.Body, "not found")
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
