// internal/api/handler/ledger.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"peerpay/internal/domain"
	"peerpay/internal/service"
	"peerpay/internal/util"
)

// DefaultTimeout bounds request handling time.
const DefaultTimeout = 30 * time.Second

// LedgerHandler handles HTTP requests for the ledger facade.
type LedgerHandler struct {
	service  service.LedgerService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc service.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		service:  svc,
		validate: validator.New(),
		logger:   logger,
	}
}

// Helper function to send JSON responses.
func (h *LedgerHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses. Validation failures map to 400,
// unknown users to 404, duplicate registration to 409, and an unfunded
// payment to 402. The more specific payment errors must be matched before
// the ErrPayment kind.
func (h *LedgerHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrUsername),
		util.IsError(err, util.ErrCreditCard),
		util.IsError(err, util.ErrSelfPayment),
		util.IsError(err, util.ErrNonPositiveAmount),
		util.IsError(err, util.ErrFriend):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrDuplicateUser):
		statusCode = http.StatusConflict
		message = err.Error()
	case util.IsError(err, util.ErrPayment):
		statusCode = http.StatusPaymentRequired
		message = err.Error()
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	Username         string          `json:"username" validate:"required"`
	InitialBalance   decimal.Decimal `json:"initial_balance"`
	CreditCardNumber string          `json:"credit_card_number"`
}

// CreateUser handles the user registration request.
// POST /users
func (h *LedgerHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.InitialBalance.IsNegative() {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Username, req.InitialBalance, req.CreditCardNumber)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "User created",
		"username": user.Username,
		"balance":  user.Balance,
	})
}

// PayRequest represents the request body for a payment.
type PayRequest struct {
	Actor  string          `json:"actor" validate:"required"`
	Target string          `json:"target" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// Pay handles a payment between two users.
// POST /payments
func (h *LedgerHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	payment, err := h.service.Pay(r.Context(), req.Actor, req.Target, req.Amount, req.Note)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Payment successful",
		"payment_id": payment.ID,
		"amount":     payment.Amount,
	})
}

// AddFriendRequest represents the request body for adding a friend.
type AddFriendRequest struct {
	Friend string `json:"friend" validate:"required"`
}

// AddFriend links two users as friends.
// POST /users/{username}/friends
func (h *LedgerHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	if err := h.service.AddFriend(r.Context(), username, req.Friend); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{"message": "Friend added"})
}

// GetFeed returns the user's rendered feed, oldest entry first.
// GET /users/{username}/feed
func (h *LedgerHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	activities, err := h.service.Feed(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		lines = append(lines, domain.Render(a))
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"username": username,
		"feed":     lines,
	})
}

// GetBalance handles the get balance request.
// GET /users/{username}/balance
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	balance, err := h.service.GetBalance(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"username": username,
		"balance":  balance,
	})
}
