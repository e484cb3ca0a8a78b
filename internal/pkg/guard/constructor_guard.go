// Package guard implements a defensive construction pattern for value objects,
// commands, and entities: embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was built through its designated
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. The guard holds an internal flag that is
// only set by NewConstructorGuard, so a zero-value struct fails validation.
//
// Example usage:
//
//	type CreateBatchCommand struct {
//	    tripKey string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCreateBatchCommand(tripKey string) (CreateBatchCommand, error) {
//	    if tripKey == "" {
//	        return CreateBatchCommand{}, errs.NewValueIsRequiredError("tripKey")
//	    }
//	    return CreateBatchCommand{tripKey: tripKey, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateBatchCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
