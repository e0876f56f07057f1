package repository

import (
	"context"

	"agua-gas/internal/model"
)

// DeliveryFeeRepository persists the neighborhood delivery fee table.
// Every mutating operation writes the full table before returning.
type DeliveryFeeRepository interface {
	// List returns all fee records in storage order.
	List(ctx context.Context) ([]model.DeliveryFee, error)

	// Save replaces the whole table.
	Save(ctx context.Context, fees []model.DeliveryFee) error
}

// OrderRepository persists the append-only order history.
type OrderRepository interface {
	// List returns the full order history in storage order.
	List(ctx context.Context) ([]model.Order, error)

	// Append adds an order to the history.
	Append(ctx context.Context, order model.Order) error
}

// CustomerRepository persists the CRM customer list.
type CustomerRepository interface {
	// List returns all customers in storage order. The second result
	// reports whether a customer list has ever been persisted, which
	// drives the one-time synthesis from order history.
	List(ctx context.Context) ([]model.Customer, bool, error)

	// Save replaces the whole customer list.
	Save(ctx context.Context, customers []model.Customer) error
}

// SettingsRepository persists storefront configuration values and the admin
// session flags.
type SettingsRepository interface {
	// BusinessNumber returns the configured WhatsApp destination number,
	// or empty when none has been saved.
	BusinessNumber(ctx context.Context) (string, error)

	// SetBusinessNumber saves the WhatsApp destination number.
	SetBusinessNumber(ctx context.Context, number string) error

	// AdminSessionValid reports whether the given admin session token was
	// issued and not revoked.
	AdminSessionValid(ctx context.Context, token string) (bool, error)

	// AddAdminSession records a newly issued admin session token.
	AddAdminSession(ctx context.Context, token string) error

	// RemoveAdminSession revokes an admin session token.
	RemoveAdminSession(ctx context.Context, token string) error
}
