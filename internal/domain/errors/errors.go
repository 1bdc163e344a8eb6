package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Kind classifies an error independent of the transport that reports it.
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindForbidden       Kind = "FORBIDDEN"
	KindConflict        Kind = "CONFLICT"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindUnavailable     Kind = "UNAVAILABLE"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindInternal        Kind = "INTERNAL"
)

// KindOf maps any error in err's chain to a Kind. Errors that are not
// AppErrors are reported as KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if !errors.As(err, &appErr) {
		return KindInternal
	}

	switch appErr.HTTPCode() {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindInvalidArgument
	case http.StatusServiceUnavailable:
		return KindUnavailable
	case http.StatusUnauthorized:
		return KindUnauthorized
	default:
		return KindInternal
	}
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

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"email is already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	// Post-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"post not found",
		"",
	)

	ErrPostNotAvailable = NewBaseError(
		http.StatusForbidden,
		"POST_NOT_AVAILABLE",
		"post is not available",
		"",
	)

	ErrPremiumRequired = NewBaseError(
		http.StatusForbidden,
		"PREMIUM_REQUIRED",
		"premium subscription required",
		"",
	)

	ErrPostOwnership = NewBaseError(
		http.StatusForbidden,
		"POST_OWNERSHIP_VIOLATION",
		"you do not own this post",
		"",
	)

	ErrInvalidPriceRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE_RANGE",
		"minPrice must not exceed maxPrice",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY",
		"invalid query parameter",
		"",
	)

	// Moderation-related errors
	ErrRejectReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REJECT_REASON_REQUIRED",
		"a reject reason is required",
		"",
	)

	// Interaction-related errors
	ErrVotingNotAllowed = NewBaseError(
		http.StatusForbidden,
		"VOTING_NOT_ALLOWED",
		"voting is not allowed on this post",
		"",
	)

	ErrCommentNotAllowed = NewBaseError(
		http.StatusForbidden,
		"COMMENT_NOT_ALLOWED",
		"commenting is not allowed on this post",
		"",
	)

	ErrInvalidVote = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VOTE",
		"vote value must be 1 or -1",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"rating must be between 1 and 5",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	ErrCategorySlugExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_SLUG_EXISTS",
		"a category with this slug already exists",
		"",
	)

	// Shop-related errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"shop not found",
		"",
	)

	ErrShopSlugExists = NewBaseError(
		http.StatusConflict,
		"SHOP_SLUG_EXISTS",
		"a shop with this slug already exists",
		"",
	)

	ErrShopOwnership = NewBaseError(
		http.StatusForbidden,
		"SHOP_OWNERSHIP_VIOLATION",
		"you do not own this shop",
		"",
	)

	// Subscription-related errors
	ErrProviderNotImplemented = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_NOT_IMPLEMENTED",
		"payment provider is not available",
		"",
	)

	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"subscription not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a store failure. It reports as
// Unavailable so callers can distinguish it from business errors.
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "storage is temporarily unavailable"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
