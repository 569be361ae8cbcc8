// internal/domain/validate.go
package domain

import "regexp"

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{4,15}$`)

// acceptedCardNumbers stands in for a real validity check against the card
// processor; only these test numbers are chargeable.
var acceptedCardNumbers = map[string]struct{}{
	"4111111111111111": {},
	"4242424242424242": {},
}

// IsValidUsername reports whether s is 4 to 15 characters of [A-Za-z0-9_-].
func IsValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsValidCreditCardNumber reports whether s is an accepted card number.
func IsValidCreditCardNumber(s string) bool {
	_, ok := acceptedCardNumbers[s]
	return ok
}
