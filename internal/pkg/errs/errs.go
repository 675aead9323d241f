package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrPersistenceFailed   = errors.New("persistence failed")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object with the given identifier
// does not exist in the underlying store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// permitted interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates a stale or malformed aggregate version,
// typically raised when an optimistic concurrency check fails.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// PreconditionFailedError indicates a guard violation: the requested
// transition is not allowed from the aggregate's current state. The
// aggregate is left untouched and the caller may surface the message
// to the actor verbatim.
type PreconditionFailedError struct {
	Aggregate  string
	ID         any
	Transition string
	PriorState int
	Cause      error
}

func NewPreconditionFailedError(aggregate string, id any, transition string, priorState int) *PreconditionFailedError {
	return &PreconditionFailedError{Aggregate: aggregate, ID: id, Transition: transition, PriorState: priorState}
}

func NewPreconditionFailedErrorWithCause(aggregate string, id any, transition string, priorState int, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Aggregate: aggregate, ID: id, Transition: transition, PriorState: priorState, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	msg := fmt.Sprintf("%s: %s %s cannot %s from state %d",
		ErrPreconditionFailed, e.Aggregate, sanitize(fmt.Sprintf("%v", e.ID)), e.Transition, e.PriorState)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// PersistenceFailedError indicates that the backing store rejected or timed
// out a write. RolledBack reports whether a compensating rollback of sibling
// mutations in the same cascade completed.
type PersistenceFailedError struct {
	Aggregate  string
	ID         any
	Operation  string
	RolledBack bool
	Cause      error
}

func NewPersistenceFailedError(aggregate string, id any, operation string, cause error) *PersistenceFailedError {
	return &PersistenceFailedError{Aggregate: aggregate, ID: id, Operation: operation, Cause: cause}
}

func (e *PersistenceFailedError) Error() string {
	msg := fmt.Sprintf("%s: %s on %s %s", ErrPersistenceFailed, e.Operation, e.Aggregate, sanitize(fmt.Sprintf("%v", e.ID)))
	if e.RolledBack {
		msg += ", compensated"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *PersistenceFailedError) Unwrap() error {
	return ErrPersistenceFailed
}

// UpstreamUnavailableError indicates that an external provider could not be
// reached. FallbackUsed reports whether a last-known or configured default
// value was substituted, in which case the surrounding operation succeeded.
type UpstreamUnavailableError struct {
	Provider     string
	FallbackUsed bool
	Cause        error
}

func NewUpstreamUnavailableError(provider string, fallbackUsed bool, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Provider: provider, FallbackUsed: fallbackUsed, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Provider)
	if e.FallbackUsed {
		msg += ", fallback applied"
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}

// DataQualityWarning records a non-fatal anomaly observed alongside a
// successful operation, such as a zero weight on an air shipment or missing
// tracking metadata on a send. Warnings never block the operation; they are
// collected and surfaced to the actor next to the success result.
type DataQualityWarning struct {
	Aggregate string
	ID        any
	Message   string
}

func NewDataQualityWarning(aggregate string, id any, message string) DataQualityWarning {
	return DataQualityWarning{Aggregate: aggregate, ID: id, Message: message}
}

func (w DataQualityWarning) String() string {
	return fmt.Sprintf("data quality: %s %s: %s", w.Aggregate, sanitize(fmt.Sprintf("%v", w.ID)), w.Message)
}
