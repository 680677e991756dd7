// Package guard provides the constructor guard pattern used by value objects,
// aggregates, commands, and queries throughout the application. Embedding a
// ConstructorGuard lets a type detect whether it was created through its
// designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that objects are only created through their
// constructor functions. The guard holds an internal flag that is only set
// when NewConstructorGuard is called; a zero-value struct fails validation.
//
// Example usage:
//
//	type Quantity struct {
//	    units int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(units int) (Quantity, error) {
//	    if units < 0 {
//	        return Quantity{}, errors.New("units cannot be negative")
//	    }
//	    return Quantity{units: units, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(ErrQuantityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it from the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For zero-value guards it returns validationError, or
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
