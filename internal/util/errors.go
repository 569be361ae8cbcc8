// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific failure below wraps one of these, so callers
// can match either the kind or the exact cause with errors.Is.
var (
	ErrUsername   = errors.New("username error")
	ErrCreditCard = errors.New("credit card error")
	ErrPayment    = errors.New("payment error")
	ErrFriend     = errors.New("friend error")
)

// Specific failures.
var (
	ErrInvalidUsername   = fmt.Errorf("%w: username not valid", ErrUsername)
	ErrCardAlreadySet    = fmt.Errorf("%w: only one credit card per user", ErrCreditCard)
	ErrInvalidCardNumber = fmt.Errorf("%w: invalid credit card number", ErrCreditCard)
	ErrSelfPayment       = fmt.Errorf("%w: user cannot pay themselves", ErrPayment)
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", ErrPayment)
	ErrNoFundingSource   = fmt.Errorf("%w: could not complete payment", ErrPayment)
	ErrNoCreditCard      = fmt.Errorf("%w: must have a credit card", ErrPayment)
	ErrChargeDeclined    = fmt.Errorf("%w: charge declined", ErrPayment)
	ErrSelfFriend        = fmt.Errorf("%w: user cannot befriend themselves", ErrFriend)
)

// Facade-level errors.
var (
	ErrInvalidInput  = errors.New("invalid input provided")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// IsError reports whether err matches target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
