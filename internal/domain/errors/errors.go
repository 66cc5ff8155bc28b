// Package errors defines the application-level error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"krvt/internal/errors"
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
	// Validation errors (empty or malformed required fields)
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dữ liệu nhập không hợp lệ",
		"",
	)

	// Participant-related errors
	ErrParticipantConflict = NewBaseError(
		http.StatusConflict,
		"PARTICIPANT_CONFLICT",
		"Mã thành viên đã tồn tại",
		"",
	)

	ErrParticipantNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTICIPANT_NOT_FOUND",
		"Không tìm thấy thành viên",
		"",
	)

	// Hotspot-related errors
	ErrHotspotNotFound = NewBaseError(
		http.StatusNotFound,
		"HOTSPOT_NOT_FOUND",
		"Không tìm thấy điểm theo dõi",
		"",
	)

	// Event-related errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Không tìm thấy sự kiện",
		"",
	)

	// Reward-related errors
	ErrRewardNotFound = NewBaseError(
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"Không tìm thấy quà tặng",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_POINTS",
		"Không đủ điểm để đổi quà",
		"",
	)

	// Voucher-related errors
	ErrVoucherFailed = NewBaseError(
		http.StatusInternalServerError,
		"VOUCHER_FAILED",
		"Tạo phiếu đổi quà thất bại",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Hệ thống gặp lỗi nội bộ",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy tài nguyên",
		"",
	)
)

// StorageError represents a snapshot store failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "snapshot store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Lưu dữ liệu thất bại"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.err
}
