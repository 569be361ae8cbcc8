// internal/domain/charger.go
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CardCharger charges a credit card through an external payment processor.
// A non-nil error means the charge was declined and no funds moved.
type CardCharger interface {
	Charge(ctx context.Context, cardNumber string, amount decimal.Decimal) error
}
