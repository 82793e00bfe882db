package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Authentication errors
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	ErrValidation   ErrorCode = "VALIDATION_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrMissingData  ErrorCode = "MISSING_DATA"

	// Resource errors
	ErrNotFound ErrorCode = "NOT_FOUND"

	// External service errors
	ErrSheetError ErrorCode = "SHEET_ERROR"
	ErrMailError  ErrorCode = "MAIL_ERROR"

	// Internal errors
	ErrInternal ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured API error
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    any       `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a new APIError
func New(code ErrorCode, message string, httpStatus int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithDetails adds details to an error
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// Common error constructors

func Unauthorized(message string) *APIError {
	return New(ErrUnauthorized, message, http.StatusUnauthorized)
}

func NotFound(message string) *APIError {
	return New(ErrNotFound, message, http.StatusNotFound)
}

func Validation(message string) *APIError {
	return New(ErrValidation, message, http.StatusBadRequest)
}

func MissingData(message string) *APIError {
	return New(ErrMissingData, message, http.StatusBadRequest)
}

func Internal(message string) *APIError {
	return New(ErrInternal, message, http.StatusInternalServerError)
}

// SheetError wraps a spreadsheet API failure. Sheet writes abort the request,
// so these surface as 500s.
func SheetError(message string, err error) *APIError {
	e := New(ErrSheetError, message, http.StatusInternalServerError)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

func MailError(err error) *APIError {
	return New(ErrMailError, "failed to send email", http.StatusInternalServerError).WithDetails(err.Error())
}

// AsAPIError converts any error into an APIError, wrapping unknown errors as
// internal ones with the given fallback message.
func AsAPIError(err error, fallback string) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return Internal(fallback).WithDetails(err.Error())
}
