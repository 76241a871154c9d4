package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgAllocFailed    = "failed to allocate"
	MsgWriteFailed    = "failed to write"
	MsgLoadFailed     = "failed to load"
	MsgInvalidValue   = "invalid value"
	MsgUnknownBlock   = "unknown block"
	MsgValidateFailed = "failed to validate"
)

// MapError wraps an error with a standardized "<component> <msg>" message.
func MapError(component string, err error, code Code, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return Wrap(err, code, formattedMsg)
}

// NewError creates a new AppError with standardized message format
func NewError(component string, code Code, msg string) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return New(code, formattedMsg)
}
