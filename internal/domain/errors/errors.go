package errors

import (
	"net/http"

	"storefront/internal/errors"
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
	// Input validation errors
	ErrNilEntity = NewBaseError(
		http.StatusBadRequest,
		"NIL_ENTITY",
		"傳入的資料實體不可為空",
		"",
	)

	ErrNilIDList = NewBaseError(
		http.StatusBadRequest,
		"NIL_ID_LIST",
		"識別碼清單不可為空",
		"",
	)

	ErrEmptyProductID = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_PRODUCT_ID",
		"商品識別碼不可為空",
		"",
	)

	ErrInvalidTake = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TAKE",
		"查詢筆數必須大於零",
		"",
	)

	ErrEmptyEmail = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_EMAIL",
		"電子郵件不可為空",
		"",
	)

	ErrParentCategoryNotFound = NewBaseError(
		http.StatusBadRequest,
		"PARENT_CATEGORY_NOT_FOUND",
		"父分類不存在",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// StorageExecuteError represents a storage engine failure, implementing the AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// Unwrap exposes the underlying engine error for errors.Is/As chains
func (e *StorageExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
