package utils

import "fmt"

type AppError struct {
	Code    string
	Message string
	Origin  error // Original error that caused this error, if any
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

// Standard error codes for the controller
const (
	// Transport / remote errors
	ErrTransport         = "TRANSPORT_FAILURE"
	ErrConflictOrMissing = "CONFLICT_OR_NOT_FOUND"

	// Authentication/Authorization errors
	ErrAuthRequired     = "AUTH_REQUIRED"
	ErrPermissionDenied = "PERMISSION_DENIED"

	// Locally-handled errors: no network call is made for these
	ErrValidation          = "VALIDATION_FAILURE"
	ErrDuplicateSubmission = "DUPLICATE_SUBMISSION"
	ErrSubmissionInFlight  = "SUBMISSION_IN_FLIGHT"

	// Navigation errors
	ErrPageNotAllowed = "PAGE_NOT_ALLOWED"
	ErrUnknownPage    = "UNKNOWN_PAGE"

	// User declined a destructive-action confirmation
	ErrCancelled = "CANCELLED"

	// Actor communication errors
	ErrActorTimeout = "ACTOR_TIMEOUT"

	ErrInvalidInput = "INVALID_INPUT"
)

// Error creation helper functions
func NewAppError(code string, message string, originalErr error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  originalErr,
	}
}

// Specific error creators for common cases
func NewTransportError(operation string, originalErr error) *AppError {
	return &AppError{
		Code:    ErrTransport,
		Message: "Request failed: " + operation,
		Origin:  originalErr,
	}
}

func NewAuthRequiredError(action string) *AppError {
	return &AppError{
		Code:    ErrAuthRequired,
		Message: "Authentication required: " + action,
	}
}

func NewPermissionDeniedError(action string) *AppError {
	return &AppError{
		Code:    ErrPermissionDenied,
		Message: "Permission denied: " + action,
	}
}

func NewValidationError(reason string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: reason,
	}
}

func NewDuplicateSubmissionError(action string) *AppError {
	return &AppError{
		Code:    ErrDuplicateSubmission,
		Message: "Please wait before submitting the same " + action + " again",
	}
}

func NewActorTimeoutError(actorName string) *AppError {
	return &AppError{
		Code:    ErrActorTimeout,
		Message: "Actor communication timeout: " + actorName,
	}
}

// Helper method to check if an error is of a specific type
func IsErrorCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// Helper method to check if an error means the session is stale
func IsAuthError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrAuthRequired
	}
	return false
}

// IsLocalRejection reports whether the error was produced without a
// network call (guard or validation rejections)
func IsLocalRejection(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrValidation ||
			appErr.Code == ErrDuplicateSubmission ||
			appErr.Code == ErrSubmissionInFlight
	}
	return false
}

// HTTPStatusToAppError classifies a non-2xx status from the engine into
// the controller's error taxonomy. This is the reverse of the mapping the
// engine applies when it renders its own error codes as HTTP statuses.
func HTTPStatusToAppError(operation string, status int) *AppError {
	switch status {
	case 401:
		return NewAuthRequiredError(operation)
	case 403:
		return NewPermissionDeniedError(operation)
	case 404, 409, 410:
		return &AppError{
			Code:    ErrConflictOrMissing,
			Message: fmt.Sprintf("%s failed: target already removed or changed (status %d)", operation, status),
		}
	default:
		return &AppError{
			Code:    ErrTransport,
			Message: fmt.Sprintf("%s failed with status %d", operation, status),
		}
	}
}
