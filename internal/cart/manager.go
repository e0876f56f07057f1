package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager keeps one in-memory cart per storefront session. Carts live only
// for the lifetime of the process. All access goes through the mutex because
// HTTP requests for different sessions arrive concurrently.
type Manager struct {
	mu     sync.Mutex
	carts  map[string]*Cart
	logger zerolog.Logger
}

// NewManager creates an empty session cart manager.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		carts:  make(map[string]*Cart),
		logger: logger.With().Str("component", "cart_manager").Logger(),
	}
}

// NewSession creates a fresh empty cart and returns its session token.
func (m *Manager) NewSession() string {
	token := uuid.NewString()
	m.mu.Lock()
	m.carts[token] = &Cart{}
	m.mu.Unlock()

	m.logger.Debug().Str("session", token).Msg("cart session created")
	return token
}

// With runs fn against the cart for the given session while holding the
// manager lock, creating the cart on first use. Errors from fn are returned
// unchanged.
func (m *Manager) With(token string, fn func(*Cart) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[token]
	if !ok {
		c = &Cart{}
		m.carts[token] = c
	}
	return fn(c)
}

// Drop discards the cart for the given session, if any.
func (m *Manager) Drop(token string) {
	m.mu.Lock()
	delete(m.carts, token)
	m.mu.Unlock()
}
