// Package guard provides a small defensive-programming helper that ensures
// value objects, commands, and queries are only created through their
// designated constructor functions. Embedding a ConstructorGuard in a struct
// makes the zero value detectable, so code paths that receive a directly
// instantiated struct can reject it.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed.
// The zero value is invalid; NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
