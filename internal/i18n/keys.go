package i18n

// Translation keys used by the HTTP layer.
const (
	// ErrKeyInvalidRequest is the key for invalid request errors.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInternalError is the key for internal server errors.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound is the key for missing resources.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimit is the key for rate limit errors.
	ErrKeyRateLimit = "error.rate_limit_exceeded"
	// ErrKeyPackSum is the key for the pack-sum validation failure.
	ErrKeyPackSum = "error.validation.pack_sum"
	// ErrKeyRevertNotConfirmed is the key for an unconfirmed revert.
	ErrKeyRevertNotConfirmed = "error.revert_not_confirmed"
	// ErrKeyNotOverride is the key for a revert against the default scope.
	ErrKeyNotOverride = "error.not_override"
	// ErrKeyTimeout is the key for request timeouts.
	ErrKeyTimeout = "error.timeout"
)
