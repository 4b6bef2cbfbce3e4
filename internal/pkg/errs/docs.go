// Package errs provides standardized error types for the vroom job catalogue.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Error: a categorized error (INTERNAL, INPUT, ROUTING) surfaced to the caller
//     that built the problem. Input errors abort problem building and are never retried.
//   - Field-level errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) describing which value failed.
//
// Each field-level error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
