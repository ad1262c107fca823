package blurplehook

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by constructors.
var (
	// ErrEmptyWebhookURL indicates a webhook was constructed without an endpoint
	ErrEmptyWebhookURL = errors.New("webhook URL is empty")
	// ErrInvalidWebhookURL indicates the endpoint did not parse as a URL
	ErrInvalidWebhookURL = errors.New("invalid webhook URL")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response (connection refused, DNS failure, timeout).
type NetworkError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for URL '%s': %s", e.URL, e.Reason)
}

func (e *NetworkError) Unwrap() error {
	return e.Wrapped
}

// NewNetworkError creates a new network error
func NewNetworkError(url, reason string, wrapped error) *NetworkError {
	return &NetworkError{
		URL:     url,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// DeliveryError represents an HTTP-level rejection: the webhook endpoint
// answered with a non-2xx status. Body carries the raw response so callers can
// inspect remote-side validation messages.
type DeliveryError struct {
	StatusCode int
	Body       []byte
	URL        string
}

func (e *DeliveryError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("webhook delivery to '%s' failed with status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("webhook delivery to '%s' failed with status %d", e.URL, e.StatusCode)
}

// NewDeliveryError creates a new delivery error
func NewDeliveryError(statusCode int, body []byte, url string) *DeliveryError {
	return &DeliveryError{
		StatusCode: statusCode,
		Body:       body,
		URL:        url,
	}
}
