// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"

	"peerpay/internal/domain"
	"peerpay/internal/metrics"
	"peerpay/internal/util"
)

// LedgerService defines the interface for the payment-ledger business logic.
type LedgerService interface {
	CreateUser(ctx context.Context, username string, initialBalance decimal.Decimal, cardNumber string) (*domain.User, error)
	Pay(ctx context.Context, actor, target string, amount decimal.Decimal, note string) (*domain.Payment, error)
	AddFriend(ctx context.Context, username, friend string) error
	Feed(ctx context.Context, username string) ([]domain.Activity, error)
	GetBalance(ctx context.Context, username string) (decimal.Decimal, error)
}

// ledgerService implements the LedgerService interface. The user registry is
// in-memory; mu is the single critical section for every operation touching
// user state, so the two-party mutations in Pay and AddFriend change both
// sides together or not at all, and concurrent payments against one user
// serialize on it.
type ledgerService struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	charger domain.CardCharger
}

// NewLedgerService creates a new instance of LedgerService with the given
// card charger.
func NewLedgerService(charger domain.CardCharger) LedgerService {
	return &ledgerService{
		users:   make(map[string]*domain.User),
		charger: charger,
	}
}

// CreateUser registers a user, credits the initial balance and attaches the
// card when one is given. Domain validation errors propagate unchanged and
// leave the registry untouched.
func (s *ledgerService) CreateUser(ctx context.Context, username string, initialBalance decimal.Decimal, cardNumber string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return nil, fmt.Errorf("create user %q: %w", username, util.ErrDuplicateUser)
	}

	user, err := domain.NewUser(username)
	if err != nil {
		return nil, err
	}
	user.Balance = user.Balance.Add(initialBalance)
	if cardNumber != "" {
		if err := user.AddCreditCard(cardNumber); err != nil {
			return nil, err
		}
	}

	s.users[username] = user
	metrics.UsersCreated.Inc()
	return user, nil
}

// Pay transfers amount from actor to target (balance first, card fallback)
// and returns the created payment.
func (s *ledgerService) Pay(ctx context.Context, actor, target string, amount decimal.Decimal, note string) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actorUser, err := s.lookup(actor)
	if err != nil {
		return nil, err
	}
	targetUser, err := s.lookup(target)
	if err != nil {
		return nil, err
	}

	// Mirrors the dispatch inside User.Pay, observed before balances move.
	fundingPath := "card"
	if amount.LessThanOrEqual(actorUser.Balance) {
		fundingPath = "balance"
	}

	payment, err := actorUser.Pay(ctx, s.charger, targetUser, amount, note)
	if err != nil {
		metrics.PaymentFailures.Inc()
		return nil, err
	}

	metrics.PaymentsTotal.WithLabelValues(fundingPath).Inc()
	return payment, nil
}

// AddFriend links the two users symmetrically. Repeat calls are no-ops.
func (s *ledgerService) AddFriend(ctx context.Context, username, friend string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.lookup(username)
	if err != nil {
		return err
	}
	other, err := s.lookup(friend)
	if err != nil {
		return err
	}

	already := actor.HasFriend(other)
	if err := domain.MakeFriends(actor, other); err != nil {
		return err
	}
	if !already {
		metrics.FriendshipsTotal.Inc()
	}
	return nil
}

// Feed returns the user's activity log, oldest entry first. No filtering,
// no pagination.
func (s *ledgerService) Feed(ctx context.Context, username string) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.lookup(username)
	if err != nil {
		return nil, err
	}
	return user.Feed(), nil
}

// GetBalance returns the user's current balance.
func (s *ledgerService) GetBalance(ctx context.Context, username string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.lookup(username)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

// lookup must be called with s.mu held.
func (s *ledgerService) lookup(username string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, util.ErrUserNotFound)
	}
	return user, nil
}

// RenderFeed writes each activity's representation to w, one per line, in
// sequence order.
func RenderFeed(w io.Writer, activities []domain.Activity) {
	for _, a := range activities {
		fmt.Fprintln(w, domain.Render(a))
	}
}
