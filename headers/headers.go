// Package headers defines HTTP header constants used across the Curbwise clients.
// This is the single source of truth for header names used in API requests/responses.
package headers

const (
	// RequestID is the correlation ID the backend echoes on every response.
	RequestID = "X-Curbwise-Request-Id"

	// Client identifies the calling client and version for server-side logs.
	Client = "X-Curbwise-Client"

	// Traceparent is the W3C trace context header for outbound requests.
	Traceparent = "Traceparent"
)
