package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agua-gas/internal/cart"
	"agua-gas/internal/catalog"
	"agua-gas/internal/handler"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubSessions struct {
	valid map[string]bool
}

func (s *stubSessions) SessionValid(_ context.Context, token string) (bool, error) {
	return s.valid[token], nil
}

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	products := catalog.Default()
	carts := cart.NewManager(logger)

	catalogHandler := handler.NewCatalogHandler(products, logger)
	cartHandler := handler.NewCartHandler(carts, products, logger)

	sessions := &stubSessions{valid: map[string]bool{"admin-token": true}}
	return New(catalogHandler, cartHandler, nil, nil, sessions, logger)
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())
}

func TestRouter_PublicRoutesOpen(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		url  string
	}{
		{name: "product list", url: "/api/products"},
		{name: "product by ID", url: "/api/products/water-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRouter_AdminGate(t *testing.T) {
	r := newTestRouter()

	t.Run("no token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		req.Header.Set(handler.AdminHeader, "wrong")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_Preflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/checkout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
