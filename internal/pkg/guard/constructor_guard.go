// Package guard holds the constructor guard shared by commands, queries and
// domain objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when the
// caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its designated constructor.
// Embed it in a struct, set it with NewConstructorGuard in the constructor and
// check it in the struct's Validate method: a zero value struct fails validation.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    memberID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that validates successfully.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
