package handler

import (
	"encoding/json"
	"net/http"

	"agua-gas/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler runs the checkout pipeline for a cart session.
type CheckoutHandler struct {
	checkout service.CheckoutService
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// Checkout handles POST /api/checkout requests.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	token := r.Header.Get(SessionHeader)
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing session token", h.logger)
		return
	}

	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	result, err := h.checkout.Checkout(r.Context(), token, req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.logger.Info().
		Str("order_id", result.Order.ID.String()).
		Str("neighborhood", result.Order.Neighborhood).
		Msg("checkout completed")
	writeJSON(w, http.StatusCreated, result)
}
