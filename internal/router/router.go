package router

import (
	"net/http"
	"strings"

	"agua-gas/internal/handler"
	"agua-gas/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// The storefront routes are open; everything under /api/admin/ except the
// login endpoint sits behind the admin session gate.
func New(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	adminHandler *handler.AdminHandler,
	sessions middleware.AdminSessionChecker,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			catalogHandler.GetByID(w, r)
			return
		}
		catalogHandler.List(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes
	mux.HandleFunc("/api/cart/session", cartHandler.NewSession)
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cartHandler.Get(w, r)
		case http.MethodDelete:
			cartHandler.Clear(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/cart/lines", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cartHandler.AddLine(w, r)
	})
	mux.HandleFunc("/api/cart/lines/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			cartHandler.UpdateLine(w, r)
		case http.MethodDelete:
			cartHandler.RemoveLine(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Checkout route
	mux.HandleFunc("/api/checkout", checkoutHandler.Checkout)

	// Admin routes behind the session gate; login stays open.
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/api/admin/logout", adminHandler.Logout)
	adminMux.HandleFunc("/api/admin/delivery-fees", adminHandler.DeliveryFees)
	adminMux.HandleFunc("/api/admin/delivery-fees/", adminHandler.RemoveDeliveryFee)
	adminMux.HandleFunc("/api/admin/customers", adminHandler.Customers)
	adminMux.HandleFunc("/api/admin/customers/", adminHandler.UpdateCustomer)
	adminMux.HandleFunc("/api/admin/orders", adminHandler.Orders)
	adminMux.HandleFunc("/api/admin/settings/whatsapp", adminHandler.BusinessNumber)
	adminMux.HandleFunc("/api/admin/settings/whatsapp/test", adminHandler.TestHandoff)

	adminGate := middleware.AdminAuth(sessions, logger)(adminMux)
	mux.HandleFunc("/api/admin/login", adminHandler.Login)
	mux.HandleFunc("/api/admin/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/admin/login") {
			adminHandler.Login(w, r)
			return
		}
		adminGate.ServeHTTP(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
