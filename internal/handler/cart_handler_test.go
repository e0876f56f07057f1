package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agua-gas/internal/cart"
	"agua-gas/internal/catalog"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartHandler, string) {
	t.Helper()

	carts := cart.NewManager(zerolog.Nop())
	h := NewCartHandler(carts, catalog.Default(), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/session", nil)
	rec := httptest.NewRecorder()
	h.NewSession(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotEmpty(t, payload["sessionToken"])

	return h, payload["sessionToken"]
}

func addLine(t *testing.T, h *CartHandler, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/lines", strings.NewReader(body))
	req.Header.Set(SessionHeader, token)
	rec := httptest.NewRecorder()
	h.AddLine(rec, req)
	return rec
}

func TestCartHandler_AddLine(t *testing.T) {
	h, token := newCartFixture(t)

	rec := addLine(t, h, token, `{"productId":"water-1","sizeId":"water-1-s","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.TotalItems)
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestCartHandler_AddLine_MergesSameSlot(t *testing.T) {
	h, token := newCartFixture(t)

	addLine(t, h, token, `{"productId":"water-1","sizeId":"water-1-s","quantity":2}`)
	rec := addLine(t, h, token, `{"productId":"water-1","sizeId":"water-1-s","quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 5, view.TotalItems)
}

func TestCartHandler_AddLine_Errors(t *testing.T) {
	h, token := newCartFixture(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "unknown product", body: `{"productId":"nope","sizeId":"x","quantity":1}`, expectedStatus: http.StatusNotFound},
		{name: "unknown size", body: `{"productId":"water-1","sizeId":"gas-1-m","quantity":1}`, expectedStatus: http.StatusNotFound},
		{name: "zero quantity", body: `{"productId":"water-1","sizeId":"water-1-s","quantity":0}`, expectedStatus: http.StatusBadRequest},
		{name: "malformed body", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := addLine(t, h, token, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCartHandler_MissingSessionToken(t *testing.T) {
	h, _ := newCartFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_UpdateAndRemoveLine(t *testing.T) {
	h, token := newCartFixture(t)
	addLine(t, h, token, `{"productId":"water-1","sizeId":"water-1-s","quantity":1}`)
	addLine(t, h, token, `{"productId":"gas-1","sizeId":"gas-1-m","quantity":1}`)

	req := httptest.NewRequest(http.MethodPut, "/api/cart/lines/0", strings.NewReader(`{"quantity":4}`))
	req.Header.Set(SessionHeader, token)
	rec := httptest.NewRecorder()
	h.UpdateLine(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 5, view.TotalItems)

	req = httptest.NewRequest(http.MethodDelete, "/api/cart/lines/1", nil)
	req.Header.Set(SessionHeader, token)
	rec = httptest.NewRecorder()
	h.RemoveLine(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Lines, 1)
}

func TestCartHandler_RemoveLine_OutOfRange(t *testing.T) {
	h, token := newCartFixture(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/lines/7", nil)
	req.Header.Set(SessionHeader, token)
	rec := httptest.NewRecorder()
	h.RemoveLine(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	h, token := newCartFixture(t)
	addLine(t, h, token, `{"productId":"water-2","sizeId":"water-2-m","quantity":3}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	req.Header.Set(SessionHeader, token)
	rec := httptest.NewRecorder()
	h.Clear(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.TotalItems)
	assert.True(t, view.TotalPrice.IsZero())
}
