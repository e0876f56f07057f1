package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agua-gas/internal/catalog"
	"agua-gas/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_List(t *testing.T) {
	h := NewCatalogHandler(catalog.Default(), zerolog.Nop())

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedCount  int
	}{
		{name: "all products", url: "/api/products", expectedStatus: http.StatusOK, expectedCount: 3},
		{name: "water only", url: "/api/products?category=water", expectedStatus: http.StatusOK, expectedCount: 2},
		{name: "gas only", url: "/api/products?category=gas", expectedStatus: http.StatusOK, expectedCount: 1},
		{name: "unknown category", url: "/api/products?category=soda", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
				assert.Len(t, products, tt.expectedCount)
			}
		})
	}
}

func TestCatalogHandler_GetByID(t *testing.T) {
	h := NewCatalogHandler(catalog.Default(), zerolog.Nop())

	t.Run("known product", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/gas-1", nil)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var product model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "gas-1", product.ID)
		assert.Equal(t, model.CategoryGas, product.Category)
	})

	t.Run("unknown product", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
		rec := httptest.NewRecorder()
		h.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
