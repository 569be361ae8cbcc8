// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"peerpay/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(ledgerHandler *handler.LedgerHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// User API routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/", ledgerHandler.CreateUser)
		r.Get("/{username}/balance", ledgerHandler.GetBalance)
		r.Get("/{username}/feed", ledgerHandler.GetFeed)
		r.Post("/{username}/friends", ledgerHandler.AddFriend)
	})

	// Payments are a separate top-level endpoint as they involve two users
	r.Post("/payments", ledgerHandler.Pay)

	return r
}
