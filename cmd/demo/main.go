// cmd/demo/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"peerpay/internal/processor"
	"peerpay/internal/service"
	"peerpay/internal/util"
)

// Runs the reference flow: Bobby pays Carol from his balance, Carol pays
// Bobby back through her card, Bobby's feed is rendered and the two become
// friends.
func main() {
	// Warn level keeps the rendered feed as the only stdout output.
	util.InitLogger(slog.LevelWarn, "")
	logger := util.GetLogger()

	ctx := context.Background()
	ledger := service.NewLedgerService(processor.NewSandboxProcessor(logger))

	if _, err := ledger.CreateUser(ctx, "Bobby", decimal.NewFromFloat(5.00), "4111111111111111"); err != nil {
		logger.Error("Failed to create user", "error", err)
		os.Exit(1)
	}
	if _, err := ledger.CreateUser(ctx, "Carol", decimal.NewFromFloat(10.00), "4242424242424242"); err != nil {
		logger.Error("Failed to create user", "error", err)
		os.Exit(1)
	}

	// A failed payment ends that payment only, not the batch.
	if _, err := ledger.Pay(ctx, "Bobby", "Carol", decimal.NewFromFloat(5.00), "Coffee"); err != nil {
		logger.Warn("Payment failed", "error", err)
	}
	if _, err := ledger.Pay(ctx, "Carol", "Bobby", decimal.NewFromFloat(15.00), "Lunch"); err != nil {
		logger.Warn("Payment failed", "error", err)
	}

	feed, err := ledger.Feed(ctx, "Bobby")
	if err != nil {
		logger.Error("Failed to retrieve feed", "error", err)
		os.Exit(1)
	}
	service.RenderFeed(os.Stdout, feed)

	if err := ledger.AddFriend(ctx, "Bobby", "Carol"); err != nil {
		logger.Warn("Failed to add friend", "error", err)
	}
}
