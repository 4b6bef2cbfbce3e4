package errs

import (
	"errors"
	"fmt"
)

// Category classifies an Error by who is expected to act on it.
type Category int

const (
	// CategoryInternal marks defects in the service itself.
	CategoryInternal Category = iota
	// CategoryInput marks malformed user-supplied problem data.
	CategoryInput
	// CategoryRouting marks failures of the distance/duration collaborator.
	CategoryRouting
)

var (
	// ErrInternal is the sentinel matched by every internal Error.
	ErrInternal = errors.New("internal error")
	// ErrInput is the sentinel matched by every input Error.
	ErrInput = errors.New("input error")
	// ErrRouting is the sentinel matched by every routing Error.
	ErrRouting = errors.New("routing error")
)

// String returns the upper-case category name used in API responses.
func (c Category) String() string {
	switch c {
	case CategoryInternal:
		return "INTERNAL"
	case CategoryInput:
		return "INPUT"
	case CategoryRouting:
		return "ROUTING"
	default:
		return "UNKNOWN"
	}
}

func (c Category) sentinel() error {
	switch c {
	case CategoryInput:
		return ErrInput
	case CategoryRouting:
		return ErrRouting
	default:
		return ErrInternal
	}
}

// Error is a categorized error carrying a human-readable message.
//
// Example:
//
//	err := errs.NewInputError("empty time windows for job %d", 42)
//	errors.Is(err, errs.ErrInput) // true
type Error struct {
	Category Category
	Message  string
	Cause    error
}

// NewInputError creates an INPUT error with a formatted message.
func NewInputError(format string, args ...any) *Error {
	return &Error{
		Category: CategoryInput,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewInputErrorWithCause creates an INPUT error that also unwraps to cause.
func NewInputErrorWithCause(message string, cause error) *Error {
	return &Error{
		Category: CategoryInput,
		Message:  message,
		Cause:    cause,
	}
}

// NewInternalError creates an INTERNAL error with a formatted message.
func NewInternalError(format string, args ...any) *Error {
	return &Error{
		Category: CategoryInternal,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes both the category sentinel and the cause, so errors.Is
// matches ErrInput as well as e.g. ErrValueIsOutOfRange.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Category.sentinel(), e.Cause}
	}
	return []error{e.Category.sentinel()}
}

// CategoryOf reports the category of the first Error found in err's chain.
// Field-level errors and missing objects describe caller-supplied values and
// count as input. Anything else is internal.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}

	switch {
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrObjectNotFound):
		return CategoryInput
	default:
		return CategoryInternal
	}
}
