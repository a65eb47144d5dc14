package models

import "errors"

// Sentinel errors for the operations exposed by the service layer. Controllers
// match on these with errors.Is and translate them to HTTP responses; nothing
// below the controller boundary inspects storage-engine error codes.
var (
	// ErrValidation covers rejected input: empty required fields, negative
	// prices, non-positive quantities, unknown roles.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName is returned when a user or category name is already taken.
	ErrDuplicateName = errors.New("name already exists")

	// ErrReferentialConflict is returned when a delete is blocked because
	// dependent rows still reference the target.
	ErrReferentialConflict = errors.New("record is still referenced")

	// ErrNotFound is returned when the target id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyCart is returned by checkout when the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidCredentials is returned on authentication mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPersistence wraps storage faults that are not one of the typed
	// conditions above.
	ErrPersistence = errors.New("storage failure")
)

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error code constants
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeDuplicateName      = "DUPLICATE_NAME"
	ErrCodeReferentialBlock   = "REFERENTIAL_CONFLICT"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInternalServer     = "INTERNAL_SERVER_ERROR"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string) APIError {
	return APIError{Code: code, Message: message}
}
