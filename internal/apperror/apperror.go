// Package apperror defines the error kinds service operations return. Handlers
// translate kinds into HTTP statuses at the boundary; services never touch
// status codes or response bodies.
package apperror

import "fmt"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindInvalidCredentials
	KindUnauthorized
	KindNotFound
	KindAlreadyApplied
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindAlreadyApplied:
		return "already_applied"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error carries a kind and a client-facing message. Wrapped causes stay
// server-side for logging.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to an internal-kind error. The message is what the
// client sees; the cause is what gets logged.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Internal builds the catch-all error for unexpected persistence failures.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := err.(*Error)
	return ok && appErr.Kind == kind
}
