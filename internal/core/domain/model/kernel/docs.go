// Package kernel contains shared value objects used across the fulfillment
// domain model: aggregate identifiers, monetary amounts, freight modes, and
// physical dimensions.
//
// All value objects are immutable and validated at construction. The zero
// value of each type is invalid and fails Validate, which keeps
// half-initialized values out of aggregates restored from persistence.
package kernel
