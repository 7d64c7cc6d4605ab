// Package errs provides standardized error types for the order tracking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for every failure class a user action can hit:
//   - ValueIsRequiredError, ValueIsInvalidError: malformed input caught before any write
//   - ObjectNotFoundError: a referenced company, order or progress step is absent
//   - ObjectAlreadyExistsError: a unique key (order number, company owner) collided
//   - PartialFailureError: a multi-step write stopped half way (order without progress)
//   - TransportError: the database or another external collaborator failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
