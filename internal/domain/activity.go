// internal/domain/activity.go
package domain

import "fmt"

// ActivityType defines the kind of a feed activity.
type ActivityType string

const (
	ActivityTypePayment   ActivityType = "PAYMENT"
	ActivityTypeNewFriend ActivityType = "NEW_FRIEND"
)

// Activity is a single immutable entry in a user's feed. The payload fields
// matching Type are set; the others are nil.
type Activity struct {
	Type      ActivityType
	Payment   *Payment // set when Type == ActivityTypePayment
	Actor     *User    // set when Type == ActivityTypeNewFriend
	NewFriend *User    // set when Type == ActivityTypeNewFriend
}

// NewPaymentActivity wraps a completed payment as a feed entry.
func NewPaymentActivity(p *Payment) Activity {
	return Activity{Type: ActivityTypePayment, Payment: p}
}

// NewFriendActivity records that actor befriended newFriend, described from
// the actor's perspective.
func NewFriendActivity(actor, newFriend *User) Activity {
	return Activity{Type: ActivityTypeNewFriend, Actor: actor, NewFriend: newFriend}
}

// Render produces the human-readable feed line for an activity. Amounts are
// always rendered with two decimal places.
func Render(a Activity) string {
	switch a.Type {
	case ActivityTypePayment:
		p := a.Payment
		return fmt.Sprintf("%s paid %s $%s for %s",
			p.Actor.Username, p.Target.Username, p.Amount.StringFixed(2), p.Note)
	case ActivityTypeNewFriend:
		return fmt.Sprintf("%s now is friend of %s", a.Actor.Username, a.NewFriend.Username)
	default:
		return ""
	}
}
