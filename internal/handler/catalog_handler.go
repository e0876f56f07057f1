package handler

import (
	"net/http"
	"strings"

	"agua-gas/internal/catalog"
	"agua-gas/internal/model"

	"github.com/rs/zerolog"
)

// CatalogHandler serves the product catalogue.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(c *catalog.Catalog, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/products requests, optionally filtered by
// ?category=water|gas.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		c := model.Category(category)
		if !c.Valid() {
			writeError(w, http.StatusBadRequest, "unknown category", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, h.catalog.ByCategory(c))
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.All())
}

// GetByID handles GET /api/products/{id} requests.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, ok := h.catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
