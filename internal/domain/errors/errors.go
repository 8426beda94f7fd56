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

// Is matches any BaseError carrying the same business error code, so a
// copy made by WithDetails still matches its predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// User and shop errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserBanned = NewBaseError(
		http.StatusForbidden,
		"USER_BANNED",
		"account is banned",
		"",
	)

	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"shop not found",
		"",
	)

	ErrShopAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SHOP_ALREADY_EXISTS",
		"user already owns a shop",
		"",
	)

	ErrShopBanned = NewBaseError(
		http.StatusForbidden,
		"SHOP_BANNED",
		"shop is banned",
		"",
	)

	// Product errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRODUCT_UNAVAILABLE",
		"product is not available",
		"",
	)

	// Cart errors
	ErrCartEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_EMPTY",
		"cart is empty",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"cart item not found",
		"",
	)

	ErrCartMultipleShops = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_MULTIPLE_SHOPS",
		"cart contains products from more than one shop",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity must be positive",
		"",
	)

	// Voucher errors
	ErrVoucherNotFound = NewBaseError(
		http.StatusNotFound,
		"VOUCHER_NOT_FOUND",
		"voucher not found",
		"",
	)

	ErrVoucherCodeExists = NewBaseError(
		http.StatusConflict,
		"VOUCHER_CODE_EXISTS",
		"voucher code already exists",
		"",
	)

	ErrVoucherInvalid = NewBaseError(
		http.StatusUnprocessableEntity,
		"VOUCHER_INVALID",
		"voucher is inactive, expired or exhausted",
		"",
	)

	ErrVoucherAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"VOUCHER_ALREADY_CLAIMED",
		"voucher already claimed",
		"",
	)

	ErrVoucherNotClaimed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VOUCHER_NOT_CLAIMED",
		"voucher has not been claimed",
		"",
	)

	ErrVoucherAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"VOUCHER_ALREADY_USED",
		"voucher already used",
		"",
	)

	ErrVoucherNotApplicable = NewBaseError(
		http.StatusUnprocessableEntity,
		"VOUCHER_NOT_APPLICABLE",
		"order does not reach the voucher minimum value",
		"",
	)

	// Order and payment errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrInvalidOrderTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_ORDER_TRANSITION",
		"order status transition not allowed",
		"",
	)

	ErrOrderNotPayable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PAYABLE",
		"order cannot be paid in its current status",
		"",
	)

	ErrPaymentLinkMissing = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_LINK_MISSING",
		"order has no payment link",
		"",
	)

	ErrPaymentGatewayFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_FAILED",
		"payment gateway request failed",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"payment signature verification failed",
		"",
	)

	ErrInvalidWebhookPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK_PAYLOAD",
		"malformed payment webhook payload",
		"",
	)

	ErrOrderCodeConflict = NewBaseError(
		http.StatusConflict,
		"ORDER_CODE_CONFLICT",
		"could not allocate a unique order code",
		"",
	)

	// Complaint errors
	ErrComplaintNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLAINT_NOT_FOUND",
		"complaint not found",
		"",
	)

	ErrInvalidComplaintTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_COMPLAINT_TRANSITION",
		"complaint status transition not allowed",
		"",
	)

	ErrComplaintNotPending = NewBaseError(
		http.StatusConflict,
		"COMPLAINT_NOT_PENDING",
		"complaint is no longer pending",
		"",
	)

	ErrComplaintTargetMissing = NewBaseError(
		http.StatusBadRequest,
		"COMPLAINT_TARGET_MISSING",
		"ban appeal must reference the banned shop",
		"",
	)

	// Role application errors
	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"role application not found",
		"",
	)

	ErrApplicationNotPending = NewBaseError(
		http.StatusConflict,
		"APPLICATION_NOT_PENDING",
		"role application is not pending",
		"",
	)

	ErrApplicationExists = NewBaseError(
		http.StatusConflict,
		"APPLICATION_EXISTS",
		"a pending role application already exists",
		"",
	)

	ErrRoleNotApplicable = NewBaseError(
		http.StatusBadRequest,
		"ROLE_NOT_APPLICABLE",
		"only seller or shipper can be requested",
		"",
	)

	// Moderation errors
	ErrModerationActionNotFound = NewBaseError(
		http.StatusNotFound,
		"MODERATION_ACTION_NOT_FOUND",
		"moderation action not found",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid bearer token",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
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
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
