package curbwise

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/curbwise/curbwise-go/headers"
)

// APIError captures a non-2xx response from the backend. Detail carries the
// server-provided `detail` string verbatim when the body could be parsed.
type APIError struct {
	Status    int
	Detail    string
	RequestID string
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("HTTP error %d", e.Status)
	}
	return e.Detail
}

// IsAuthFailure reports whether the response indicates a rejected credential.
func (e APIError) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// TransportError indicates the request never produced an HTTP response.
type TransportError struct {
	Cause error
}

func (e TransportError) Error() string {
	if e.Cause == nil {
		return "curbwise: network request failed"
	}
	return fmt.Sprintf("curbwise: network request failed: %v", e.Cause)
}

func (e TransportError) Unwrap() error { return e.Cause }

// ConfigError reports invalid client or session configuration.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "curbwise: " + e.Reason }

// DecodeError reports a response body that did not match the expected shape.
type DecodeError struct {
	Path  string
	Cause error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("curbwise: decoding response from %s: %v", e.Path, e.Cause)
}

func (e DecodeError) Unwrap() error { return e.Cause }

// ValidationError reports a client-side input check that failed before any
// network call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// decodeAPIError normalizes an error response into an APIError. The backend
// contract is a JSON body with a `detail` string; anything else falls back to
// a generic message carrying the status code.
func decodeAPIError(resp *http.Response) error {
	apiErr := APIError{
		Status:    resp.StatusCode,
		RequestID: resp.Header.Get(headers.RequestID),
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return apiErr
	}
	apiErr.Detail = strings.TrimSpace(payload.Detail)
	return apiErr
}
