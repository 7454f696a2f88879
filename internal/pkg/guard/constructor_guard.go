// Package guard lets value objects and commands detect that they were built
// through their constructor rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error, so validation of a zero value always fails with a
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created by its constructor. It is
// embedded as an unexported field; the constructor sets it with
// NewConstructorGuard and the owner's Validate method checks it.
//
// A struct literal or a zero value leaves the guard unset, so Validate fails
// for it. Commands, queries, orders and the progression table all carry one.
//
// Example usage:
//
//	var ErrRateOrderCommandIsNotConstructed = errors.New("RateOrderCommand must be created via NewRateOrderCommand")
//
//	type RateOrderCommand struct {
//	    userKey string
//	    rating  kernel.Rating
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewRateOrderCommand(userKey string, rating int) (RateOrderCommand, error) {
//	    r, err := kernel.NewRating(rating)
//	    if err != nil {
//	        return RateOrderCommand{}, err
//	    }
//	    return RateOrderCommand{
//	        userKey: userKey,
//	        rating:  r,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c RateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
// Call it only from the owner's constructor, after every check has passed.
//
// Returns:
//   - A ConstructorGuard with isConstructed set to true
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guard was set by NewConstructorGuard.
//
// Parameters:
//   - validationError: the owner specific error returned for a zero value
//
// Returns:
//   - nil if the guard was constructed
//   - validationError if the guard is a zero value
//   - ErrDefaultConstructorGuard if the guard is a zero value and validationError is nil
//
// Example:
//
//	var cmd commands.RateOrderCommand
//	err := cmd.Validate() // ErrRateOrderCommandIsNotConstructed
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
