package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota + 1
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_MISSING_TRANSCRIPT
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:    "INVALID_PAYLOAD",
	ErrorCode_MISSING_TRANSCRIPT: "MISSING_TRANSCRIPT",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// AppError is the error type returned across the HTTP boundary
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	msg := "Internal server error"
	if err != nil {
		msg = err.Error()
	}
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  msg,
	}
}

// Request Errors
func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrTranscriptRequired() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_TRANSCRIPT,
		Message:  "Transcript is required",
	}
}
