package models

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is wrapped by DecodeError when a result set lacks a column
// the target entity requires.
var ErrMissingColumn = errors.New("missing column")

// Error codes carried by AppError.
const (
	CodeConnection = "CONNECTION_ERROR"
	CodeQuery      = "QUERY_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConnectionError reports that the store could not be opened.
func NewConnectionError(err error) *AppError {
	return &AppError{
		Code:    CodeConnection,
		Message: "failed to open questions database",
		Err:     err,
	}
}

// NewQueryError reports a failed query against table.
func NewQueryError(table, operation string, err error) *AppError {
	return &AppError{
		Code:    CodeQuery,
		Message: fmt.Sprintf("%s.%s failed", table, operation),
		Err:     err,
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal error",
		Err:     err,
	}
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// DecodeError is returned when a result row cannot be decoded into an entity,
// either because an expected column is absent or a value has the wrong type.
type DecodeError struct {
	Table  string
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("decode %s row: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("decode %s.%s: %v", e.Table, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
