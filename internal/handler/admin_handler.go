package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"agua-gas/internal/handoff"
	"agua-gas/internal/model"
	"agua-gas/internal/repository"
	"agua-gas/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AdminHandler serves the admin panel endpoints: the password gate, the
// delivery fee table, the customer list, the order history and the
// storefront settings.
type AdminHandler struct {
	admin   service.AdminService
	fees    service.DeliveryFeeService
	crm     service.CRMService
	orders  repository.OrderRepository
	handoff handoff.Handoff
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	admin service.AdminService,
	fees service.DeliveryFeeService,
	crm service.CRMService,
	orders repository.OrderRepository,
	h handoff.Handoff,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		admin:   admin,
		fees:    fees,
		crm:     crm,
		orders:  orders,
		handoff: h,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type businessNumberPayload struct {
	Number string `json:"number"`
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	token, err := h.admin.Login(r.Context(), req.Password)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.logger.Info().Msg("admin logged in")
	writeJSON(w, http.StatusOK, map[string]string{"adminToken": token})
}

// Logout handles POST /api/admin/logout requests.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	token := r.Header.Get(AdminHeader)
	if err := h.admin.Logout(r.Context(), token); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeliveryFees handles GET and POST /api/admin/delivery-fees requests.
func (h *AdminHandler) DeliveryFees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		fees, err := h.fees.List(r.Context())
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		if fees == nil {
			fees = []model.DeliveryFee{}
		}
		writeJSON(w, http.StatusOK, fees)
	case http.MethodPost:
		var fee model.DeliveryFee
		if err := json.NewDecoder(r.Body).Decode(&fee); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
		if strings.TrimSpace(fee.Neighborhood) == "" {
			writeError(w, http.StatusBadRequest, "neighborhood is required", h.logger)
			return
		}
		if fee.Fee.IsNegative() {
			writeError(w, http.StatusBadRequest, "fee must not be negative", h.logger)
			return
		}
		if err := h.fees.Upsert(r.Context(), fee); err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, fee)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// RemoveDeliveryFee handles DELETE /api/admin/delivery-fees/{id} requests.
func (h *AdminHandler) RemoveDeliveryFee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/admin/delivery-fees/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "fee ID is required", h.logger)
		return
	}

	if err := h.fees.Remove(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Customers handles GET and POST /api/admin/customers requests. GET accepts
// an optional ?q= search term.
func (h *AdminHandler) Customers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var (
			customers []model.Customer
			err       error
		)
		if term := r.URL.Query().Get("q"); term != "" {
			customers, err = h.crm.Search(r.Context(), term)
		} else {
			customers, err = h.crm.Customers(r.Context())
		}
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		if customers == nil {
			customers = []model.Customer{}
		}
		writeJSON(w, http.StatusOK, customers)
	case http.MethodPost:
		var customer model.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
		if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
			writeError(w, http.StatusBadRequest, "name and phone are required", h.logger)
			return
		}
		created, err := h.crm.Add(r.Context(), customer)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// UpdateCustomer handles PUT /api/admin/customers/{id} requests.
func (h *AdminHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/admin/customers/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "customer ID is required", h.logger)
		return
	}

	var customer model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	customer.ID = id

	if err := h.crm.Update(r.Context(), customer); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Orders handles GET /api/admin/orders requests.
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// TestHandoff handles POST /api/admin/settings/whatsapp/test requests. It
// prepares a probe order against the current business number so the back
// office can verify the hand-off link is constructible before real orders
// depend on it. Nothing is persisted.
func (h *AdminHandler) TestHandoff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	number, err := h.admin.BusinessNumber(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	probe := model.Order{
		ID:            uuid.New(),
		CustomerName:  "Teste de Conexão",
		Phone:         "00000000000",
		Address:       "Endereço de teste",
		PaymentMethod: model.PaymentCash,
		Subtotal:      decimal.Zero,
		CreatedAt:     time.Now(),
	}
	result, err := h.handoff.Prepare(probe, number)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"number": number,
		"url":    result.URL,
	})
}

// BusinessNumber handles GET and PUT /api/admin/settings/whatsapp requests.
func (h *AdminHandler) BusinessNumber(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		number, err := h.admin.BusinessNumber(r.Context())
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, businessNumberPayload{Number: number})
	case http.MethodPut:
		var payload businessNumberPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
		if strings.TrimSpace(payload.Number) == "" {
			writeError(w, http.StatusBadRequest, "number is required", h.logger)
			return
		}
		if err := h.admin.SetBusinessNumber(r.Context(), payload.Number); err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		h.logger.Info().Str("number", payload.Number).Msg("business WhatsApp number updated")
		writeJSON(w, http.StatusOK, payload)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
