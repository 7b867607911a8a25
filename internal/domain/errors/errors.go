package errors

import (
	"net/http"

	"gallery/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Purchase initiation errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to purchase prompts",
		"",
	)

	ErrArtworkNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTWORK_NOT_FOUND",
		"Artwork not found",
		"",
	)

	ErrNoPremiumContent = NewBaseError(
		http.StatusBadRequest,
		"NO_PREMIUM_CONTENT",
		"No prompt available for this artwork",
		"",
	)

	ErrPaymentSetupFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_SETUP_FAILED",
		"Payment setup failed, please try again",
		"",
	)

	// Webhook trust boundary
	ErrInvalidSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"Webhook signature verification failed",
		"",
	)

	ErrMissingPayload = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PAYLOAD",
		"Missing request body",
		"",
	)

	// Administrative refund errors
	ErrPurchaseNotFound = NewBaseError(
		http.StatusNotFound,
		"PURCHASE_NOT_FOUND",
		"Purchase not found",
		"",
	)

	ErrPurchaseNotRefundable = NewBaseError(
		http.StatusBadRequest,
		"PURCHASE_NOT_REFUNDABLE",
		"Only completed purchases can be refunded",
		"",
	)

	ErrMissingPaymentIntent = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PAYMENT_INTENT",
		"No payment intent, cannot process refund",
		"",
	)

	ErrRefundFailed = NewBaseError(
		http.StatusBadGateway,
		"REFUND_FAILED",
		"Stripe refund failed, check logs",
		"",
	)

	// Session errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid password",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		"",
	)

	ErrSignInUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SIGN_IN_UNAVAILABLE",
		"Sign-in is not configured",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, slow down",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// SignInRequiredError is ErrUnauthenticated carrying the artwork the caller
// tried to buy, so the client can resume the purchase after sign-in.
type SignInRequiredError struct {
	ArtworkID string
}

// NewSignInRequiredError creates a resumable unauthenticated error.
func NewSignInRequiredError(artworkID string) *SignInRequiredError {
	return &SignInRequiredError{ArtworkID: artworkID}
}

func (e *SignInRequiredError) Error() string {
	return ErrUnauthenticated.Error()
}

func (e *SignInRequiredError) HTTPCode() int {
	return ErrUnauthenticated.HTTPCode()
}

func (e *SignInRequiredError) ErrorCode() string {
	return ErrUnauthenticated.ErrorCode()
}

func (e *SignInRequiredError) Message() string {
	return ErrUnauthenticated.Message()
}

func (e *SignInRequiredError) Details() string {
	return ""
}

// Is lets errors.Is(err, ErrUnauthenticated) match.
func (e *SignInRequiredError) Is(target error) bool {
	return target == ErrUnauthenticated
}
