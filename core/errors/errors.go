package errors

import "fmt"

// ErrorCode identifies an application error category
type ErrorCode string

const (
	// Generic
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrForbidden          ErrorCode = "FORBIDDEN"

	// Slot tokens
	ErrTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat ErrorCode = "INVALID_TOKEN_FORMAT"

	// Scheduling
	ErrConfiguration     ErrorCode = "CONFIGURATION_ERROR"
	ErrLookupFailed      ErrorCode = "LOOKUP_FAILED"
	ErrBookingFailed     ErrorCode = "BOOKING_FAILED"
	ErrBookingConflict   ErrorCode = "BOOKING_CONFLICT"
	ErrQuotaExceeded     ErrorCode = "QUOTA_EXCEEDED"
	ErrInvalidTransition ErrorCode = "INVALID_TRANSITION"
)

// AppError is the error type returned across service boundaries
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
