// internal/domain/validate_test.go
package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		want     bool
	}{
		{"simple", "Bobby", true},
		{"minimum length", "abcd", true},
		{"maximum length", strings.Repeat("a", 15), true},
		{"underscore and hyphen", "user_name-1", true},
		{"empty", "", false},
		{"too short", "abc", false},
		{"too long", strings.Repeat("a", 16), false},
		{"space", "bad name", false},
		{"punctuation", "bobby!", false},
		{"non-ascii letter", "böbby", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidUsername(tc.username))
		})
	}
}

func TestIsValidCreditCardNumber(t *testing.T) {
	assert.True(t, IsValidCreditCardNumber("4111111111111111"))
	assert.True(t, IsValidCreditCardNumber("4242424242424242"))
	assert.False(t, IsValidCreditCardNumber("3111111111111111"))
	assert.False(t, IsValidCreditCardNumber(""))
}
