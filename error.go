package farmsub

import (
	"errors"
	"fmt"
)

// Application error codes. The general codes map to common failure classes;
// the extraction and decode codes tag the specific ways a page or a record
// can be malformed, so batch runs can count failures by kind.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// Fragment extraction: the page did not contain exactly one map data
	// fragment. Both are fatal for the whole page.
	EAMBIGUOUS = "ambiguous"

	// Record decoding: a single record's text did not match the expected
	// shape. All are scoped to one record, never to the page.
	EDELIMITER     = "delimiter_not_found"
	ECATEGORYCOUNT = "category_count_mismatch"
	ENUMERIC       = "numeric_parse_failure"
	EBADIDENT      = "invalid_identifier"
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code identifies the kind of failure.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("farmsub error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error".
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
