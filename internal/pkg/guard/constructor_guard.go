// Package guard detects zero-value construction of commands, queries and domain objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through their
// New* constructor. The zero value is "not constructed".
//
// Example:
//
//	type RegisterCompanyCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RegisterCompanyCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterCompanyCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
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
