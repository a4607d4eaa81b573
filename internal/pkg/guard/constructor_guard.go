// Package guard provides a small helper that ensures value objects and
// commands are only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes a properly constructed object from a zero
// value. Embed it unexported in a struct and set it via NewConstructorGuard
// inside the constructor; a zero-value instance will then fail Validate.
//
// Example:
//
//	type CreateShipmentCommand struct {
//	    senderName string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCreateShipmentCommand(senderName string) (CreateShipmentCommand, error) {
//	    if senderName == "" {
//	        return CreateShipmentCommand{}, errs.NewValueIsRequiredError("senderName")
//	    }
//	    return CreateShipmentCommand{senderName: senderName, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// the supplied validationError otherwise. A nil validationError falls back
// to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
