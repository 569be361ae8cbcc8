// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peerpay_users_created_total",
			Help: "Total number of users created",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peerpay_payments_total",
			Help: "Total number of completed payments by funding path",
		},
		[]string{"funding_path"},
	)

	PaymentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peerpay_payment_failures_total",
			Help: "Total number of failed payment attempts",
		},
	)

	FriendshipsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peerpay_friendships_total",
			Help: "Total number of friendships created",
		},
	)
)
