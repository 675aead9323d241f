package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so that validation always fails with a
// meaningful message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures commands and value objects are only created through
// their designated constructor functions. A zero-value struct fails Validate,
// which prevents unvalidated instances from reaching handlers.
//
// Embed a ConstructorGuard in a struct and set it via NewConstructorGuard in
// the constructor:
//
//	type QuoteOrderCommand struct {
//	    orderID kernel.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewQuoteOrderCommand(orderID kernel.ID) (QuoteOrderCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return QuoteOrderCommand{}, err
//	    }
//	    return QuoteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c QuoteOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrQuoteOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
