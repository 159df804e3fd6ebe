package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents a standardized error response for the API.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ResolutionResponse projects a resolved packing rule for order-entry
// clients.
type ResolutionResponse struct {
	// Garment is the canonical garment identifier, empty when the item
	// carries no packing rule.
	Garment string `json:"garment,omitempty"`
	// HasRatio reports whether a packing rule was resolved.
	HasRatio bool `json:"has_ratio"`
	// SetPack is the declared pack size, zero when unset.
	SetPack int `json:"set_pack,omitempty"`
	// SizeScale is the rule's scale token.
	SizeScale string `json:"size_scale,omitempty"`
	// Sizes is the expanded, ordered size list of the scale.
	Sizes []string `json:"sizes,omitempty"`
	// Distribution maps presentation size codes to per-pack quantities.
	Distribution map[string]int `json:"distribution,omitempty"`
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
