package errclass

import "fmt"

// Error is a stable, machine-readable error class.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// WithMessage returns a new Error with the same Code but a specific message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Code: e.Code, Message: msg}
}

// WithMessagef returns a new Error with a formatted message.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return &Error{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes for v0.x.
var (
	// ErrInvalidArgument is raised when a caller supplies an argument the
	// operation cannot accept, e.g. an empty savepoint restore path.
	ErrInvalidArgument = &Error{Code: "E_INVALID_ARGUMENT"}

	// ErrPathInvalid is raised by CLI-level savepoint path hygiene checks.
	ErrPathInvalid = &Error{Code: "E_PATH_INVALID"}

	// ErrClaimModeUnknown is raised when a claim mode string cannot be parsed.
	ErrClaimModeUnknown = &Error{Code: "E_CLAIM_MODE_UNKNOWN"}

	// ErrConfigRead / ErrConfigWrite classify job configuration file I/O.
	ErrConfigRead  = &Error{Code: "E_CONFIG_READ"}
	ErrConfigWrite = &Error{Code: "E_CONFIG_WRITE"}
)
