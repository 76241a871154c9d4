package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies an AppError.
type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidArgument
	CodeAllocation
	CodeIO
	CodeConfig
)

var codeNames = map[Code]string{
	CodeUnknown:         "unknown",
	CodeInvalidArgument: "invalid argument",
	CodeAllocation:      "allocation",
	CodeIO:              "io",
	CodeConfig:          "config",
}

// String returns the human readable name of the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// AppError is the error type returned across package boundaries.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any *AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates an AppError without a cause.
func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Wrap annotates err with a code and message. A nil err yields nil.
func Wrap(err error, code Code, msg string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Cause:   errors.WithStack(err),
	}
}

// CodeOf returns the code of the first AppError in err's chain.
func CodeOf(err error) Code {
	var e *AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Sentinels usable as errors.Is targets.
var (
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid argument")
	ErrAllocation      = New(CodeAllocation, "allocation failed")
)
