// Package errs provides standardized error types for the travel order application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an entity is absent or soft-deleted
//   - ForbiddenError: For when an authenticated actor lacks authorization
//   - InvalidStateError: For when an operation is illegal from the current status
//   - ValidationError: For malformed input fields, carrying a field→message map
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     For value-object construction failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
