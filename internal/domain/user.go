// internal/domain/user.go
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"peerpay/internal/util"
)

// User is a participant in the ledger. It owns its balance, optional credit
// card, friend set and append-only activity feed. State changes only through
// the operations below; callers needing cross-user atomicity must serialize
// them (see service.LedgerService).
type User struct {
	Username         string
	Balance          decimal.Decimal
	CreditCardNumber string // empty until AddCreditCard succeeds, then never changes
	Friends          map[string]*User
	Activities       []Activity
	CreatedAt        time.Time
}

// NewUser creates a user with a zero balance and no card.
func NewUser(username string) (*User, error) {
	if !IsValidUsername(username) {
		return nil, util.ErrInvalidUsername
	}
	return &User{
		Username:  username,
		Balance:   decimal.Zero,
		Friends:   make(map[string]*User),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AddCreditCard attaches a card to the user. A user holds at most one card.
// On failure nothing changes.
func (u *User) AddCreditCard(number string) error {
	if u.CreditCardNumber != "" {
		return util.ErrCardAlreadySet
	}
	if !IsValidCreditCardNumber(number) {
		return util.ErrInvalidCardNumber
	}
	u.CreditCardNumber = number
	return nil
}

// HasFriend reports whether other is in u's friend set.
func (u *User) HasFriend(other *User) bool {
	_, ok := u.Friends[other.Username]
	return ok
}

// MakeFriends links actor and newFriend symmetrically. Both friend sets are
// mutated within this single call, guarded by one membership check, so
// repeat calls are no-ops and there is no recursion to terminate. Exactly
// one activity is appended, to the initiating side: each feed shows the
// friendships it initiated.
func MakeFriends(actor, newFriend *User) error {
	if actor == newFriend || actor.Username == newFriend.Username {
		return util.ErrSelfFriend
	}
	if actor.HasFriend(newFriend) {
		return nil
	}

	actor.Friends[newFriend.Username] = newFriend
	newFriend.Friends[actor.Username] = actor
	actor.Activities = append(actor.Activities, NewFriendActivity(actor, newFriend))
	return nil
}

// Pay transfers amount from u to target, funding from u's balance when it
// covers the whole amount and falling back to the credit card otherwise. An
// exact-balance payment uses the balance, never the card. On success one
// payment activity is appended to each party's feed.
func (u *User) Pay(ctx context.Context, charger CardCharger, target *User, amount decimal.Decimal, note string) (*Payment, error) {
	var (
		payment *Payment
		err     error
	)
	switch {
	case amount.LessThanOrEqual(u.Balance):
		payment, err = u.PayWithBalance(target, amount, note)
	case u.CreditCardNumber != "":
		payment, err = u.PayWithCard(ctx, charger, target, amount, note)
	default:
		return nil, util.ErrNoFundingSource
	}
	if err != nil {
		return nil, err
	}

	u.Activities = append(u.Activities, NewPaymentActivity(payment))
	target.Activities = append(target.Activities, NewPaymentActivity(payment))
	return payment, nil
}

// PayWithBalance funds a payment entirely from u's balance. Every
// precondition is checked before any balance moves.
func (u *User) PayWithBalance(target *User, amount decimal.Decimal, note string) (*Payment, error) {
	if u == target || u.Username == target.Username {
		return nil, util.ErrSelfPayment
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrNonPositiveAmount
	}

	payment := NewPayment(amount, u, target, note)
	u.Balance = u.Balance.Sub(amount)
	target.Balance = target.Balance.Add(amount)
	return payment, nil
}

// PayWithCard funds a payment by charging u's credit card. The charge runs
// before the Payment is constructed and before the target is credited, so a
// declined charge leaves no state behind. The payer's balance is untouched:
// the funds come from the card, not the internal balance.
func (u *User) PayWithCard(ctx context.Context, charger CardCharger, target *User, amount decimal.Decimal, note string) (*Payment, error) {
	if u == target || u.Username == target.Username {
		return nil, util.ErrSelfPayment
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrNonPositiveAmount
	}
	if u.CreditCardNumber == "" {
		return nil, util.ErrNoCreditCard
	}

	if err := charger.Charge(ctx, u.CreditCardNumber, amount); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrChargeDeclined, err)
	}

	payment := NewPayment(amount, u, target, note)
	target.Balance = target.Balance.Add(amount)
	return payment, nil
}

// Feed returns the user's activity log as-is, oldest entry first.
func (u *User) Feed() []Activity {
	return u.Activities
}
