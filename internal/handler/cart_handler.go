package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"agua-gas/internal/cart"
	"agua-gas/internal/catalog"
	"agua-gas/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CartHandler serves the session cart operations.
type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *cart.Manager, c *catalog.Catalog, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: c,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartView is the JSON shape of a cart, with the derived totals computed at
// render time.
type cartView struct {
	Lines      []model.CartLine `json:"lines"`
	TotalItems int              `json:"totalItems"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
}

// addLineRequest is the payload for adding a line to the cart.
type addLineRequest struct {
	ProductID string `json:"productId"`
	SizeID    string `json:"sizeId"`
	Quantity  int    `json:"quantity"`
}

// updateLineRequest is the payload for changing a line's quantity.
type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

// NewSession handles POST /api/cart/session requests, creating a fresh cart.
func (h *CartHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	token := h.carts.NewSession()
	writeJSON(w, http.StatusCreated, map[string]string{"sessionToken": token})
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	token, ok := h.session(w, r)
	if !ok {
		return
	}

	var view cartView
	h.carts.With(token, func(c *cart.Cart) error {
		view = cartView{
			Lines:      c.Snapshot(),
			TotalItems: c.TotalItems(),
			TotalPrice: c.TotalPrice(),
		}
		return nil
	})
	if view.Lines == nil {
		view.Lines = []model.CartLine{}
	}

	writeJSON(w, http.StatusOK, view)
}

// AddLine handles POST /api/cart/lines requests.
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	token, ok := h.session(w, r)
	if !ok {
		return
	}

	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		writeDomainError(w, model.ErrProductNotFound, h.logger)
		return
	}
	size, ok := product.SizeByID(req.SizeID)
	if !ok {
		writeDomainError(w, model.ErrSizeNotFound, h.logger)
		return
	}

	err := h.carts.With(token, func(c *cart.Cart) error {
		return c.AddLine(product, size, req.Quantity)
	})
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.logger.Debug().
		Str("product_id", req.ProductID).
		Str("size_id", req.SizeID).
		Int("quantity", req.Quantity).
		Msg("line added to cart")
	h.Get(w, r)
}

// UpdateLine handles PUT /api/cart/lines/{index} requests.
func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	token, ok := h.session(w, r)
	if !ok {
		return
	}

	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	var req updateLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	err := h.carts.With(token, func(c *cart.Cart) error {
		return c.UpdateQuantity(index, req.Quantity)
	})
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.Get(w, r)
}

// RemoveLine handles DELETE /api/cart/lines/{index} requests.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	token, ok := h.session(w, r)
	if !ok {
		return
	}

	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	err := h.carts.With(token, func(c *cart.Cart) error {
		return c.RemoveLine(index)
	})
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.Get(w, r)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	token, ok := h.session(w, r)
	if !ok {
		return
	}

	h.carts.With(token, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})

	h.Get(w, r)
}

func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := r.Header.Get(SessionHeader)
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing session token", h.logger)
		return "", false
	}
	return token, true
}

func (h *CartHandler) lineIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/cart/lines/")
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line index", h.logger)
		return 0, false
	}
	return index, true
}
