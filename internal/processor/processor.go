// internal/processor/processor.go
package processor

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// SandboxProcessor implements domain.CardCharger without a real gateway:
// every charge is approved. Swapping in a real processor client surfaces
// declines as payment errors without touching User's logic.
type SandboxProcessor struct {
	logger *slog.Logger
}

// NewSandboxProcessor creates a new SandboxProcessor.
func NewSandboxProcessor(logger *slog.Logger) *SandboxProcessor {
	return &SandboxProcessor{logger: logger}
}

// Charge approves the charge unconditionally.
func (p *SandboxProcessor) Charge(ctx context.Context, cardNumber string, amount decimal.Decimal) error {
	p.logger.Info("Card charged", "card", maskCard(cardNumber), "amount", amount.StringFixed(2))
	return nil
}

func maskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "****" + number[len(number)-4:]
}
