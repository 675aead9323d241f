// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Input validation: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError
//   - Workflow outcomes: PreconditionFailedError (guard violation, state
//     untouched), PersistenceFailedError (store write failed, possibly after
//     a compensating rollback), UpstreamUnavailableError (rate provider
//     unreachable, possibly degraded to a fallback value)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrPreconditionFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// DataQualityWarning is deliberately not an error: it records a non-fatal
// anomaly next to a successful result and must never fail an operation.
package errs
