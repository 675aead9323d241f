// Package order contains the Order aggregate and its lifecycle state machine.
//
// The lifecycle is a numeric state machine shared with every reader of the
// backing store: negative codes and zero are the cancellation/rejection
// branch, 1-2 are pending, 3-5 cover quoting and payment, 6-8 packing, and
// 9-13 the shipped leg through delivery. All guards fail with a
// PreconditionFailed error and leave the aggregate untouched.
package order
