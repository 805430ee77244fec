package model

import (
	"errors"
	"fmt"
)

// Error is the single error type returned by the pitch and chord packages.
// Two Errors match under errors.Is when their codes are equal, so callers
// compare against the sentinels below regardless of the message detail.
type Error struct {
	Code    ErrorCode
	Message string
}

type ErrorCode string

const (
	CodeInvalidChordSize ErrorCode = "INVALID_CHORD_SIZE"
	CodeInvalidRange     ErrorCode = "INVALID_RANGE"
	CodeInvalidInversion ErrorCode = "INVALID_INVERSION"
	CodeInvalidFoldLevel ErrorCode = "INVALID_FOLD_LEVEL"
	CodeInvalidPitch     ErrorCode = "INVALID_PITCH"
	CodeInvalidInterval  ErrorCode = "INVALID_INTERVAL"
	CodeOctaveOverflow   ErrorCode = "OCTAVE_OVERFLOW"
)

var (
	ErrInvalidChordSize = &Error{Code: CodeInvalidChordSize, Message: "chord size out of range"}
	ErrInvalidRange     = &Error{Code: CodeInvalidRange, Message: "missing or unbuilt chord"}
	ErrInvalidInversion = &Error{Code: CodeInvalidInversion, Message: "inversion out of range"}
	ErrInvalidFoldLevel = &Error{Code: CodeInvalidFoldLevel, Message: "fold level out of range"}
	ErrInvalidPitch     = &Error{Code: CodeInvalidPitch, Message: "invalid pitch"}
	ErrInvalidInterval  = &Error{Code: CodeInvalidInterval, Message: "invalid interval"}
	ErrOctaveOverflow   = &Error{Code: CodeOctaveOverflow, Message: "octave out of range"}
)

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError creates an Error with a formatted message.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
