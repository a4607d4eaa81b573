// Package errs provides the standardized error types for the courier tracking
// application.
//
// Each error category follows the same shape: a sentinel error for
// errors.Is classification, a struct carrying the details, constructors with
// and without an underlying cause, and Error/Unwrap methods. The categories
// map onto the service's failure taxonomy:
//
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, rejected before any write.
//   - ObjectNotFoundError: a referenced shipment, agent or branch is absent.
//   - NotAuthorizedError: the acting principal may not perform the operation.
//   - ConflictError: a unique-constraint violation, e.g. duplicate branch name.
//
// Persistence failures are not translated here; raw storage errors propagate
// unwrapped so they are never mistaken for recoverable input problems.
package errs
