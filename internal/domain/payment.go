// internal/domain/payment.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a single completed transfer between two users.
// It is immutable once constructed.
type Payment struct {
	ID        string
	Amount    decimal.Decimal
	Actor     *User // paying user, referenced not owned
	Target    *User // receiving user, referenced not owned
	Note      string
	CreatedAt time.Time
}

// NewPayment creates a new Payment instance with a generated ID.
func NewPayment(amount decimal.Decimal, actor, target *User, note string) *Payment {
	return &Payment{
		ID:        uuid.NewString(),
		Amount:    amount,
		Actor:     actor,
		Target:    target,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
}
