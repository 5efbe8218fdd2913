package antdocs

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are portable across the transports that surface them (CLI, MCP)
// and say nothing about the underlying implementation.
const (
	EEXPORT   = "export"    // bulk export produced no successful records
	EFETCH    = "fetch"     // network/transport failure or non-2xx response
	EINTERNAL = "internal"  // unexpected internal error
	EINVALID  = "invalid"   // validation failed on caller input
	ENOTFOUND = "not_found" // requested entity does not exist
	EPARSE    = "parse"     // page structure unrecognized
)

// Error represents an application-specific error. Application errors can
// be unwrapped by the caller to extract the machine-readable code and
// the human-readable message.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("antdocs error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
