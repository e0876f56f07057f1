package service

import (
	"context"

	"agua-gas/internal/handoff"
	"agua-gas/internal/model"

	"github.com/shopspring/decimal"
)

// DeliveryFeeService manages the neighborhood delivery fee table.
type DeliveryFeeService interface {
	// List returns all fee records in storage order.
	List(ctx context.Context) ([]model.DeliveryFee, error)

	// Upsert adds or replaces the fee for a neighborhood. The neighborhood
	// match is case-insensitive and the new record's identifier wins.
	Upsert(ctx context.Context, fee model.DeliveryFee) error

	// Remove deletes the record with the given identifier; absent IDs are
	// a no-op.
	Remove(ctx context.Context, id string) error

	// FeeFor looks up the fee for a neighborhood, case-insensitively.
	// found distinguishes free delivery (zero fee) from an unconfigured
	// neighborhood.
	FeeFor(ctx context.Context, neighborhood string) (fee decimal.Decimal, found bool, err error)
}

// CheckoutRequest carries everything the checkout pipeline needs beyond the
// session's cart.
type CheckoutRequest struct {
	Customer model.CustomerInfo `json:"customer"`
}

// CheckoutResult is returned after a successful hand-off.
type CheckoutResult struct {
	Order   model.Order    `json:"order"`
	Handoff handoff.Result `json:"handoff"`
}

// CheckoutService assembles orders from cart snapshots and runs the checkout
// pipeline: fee resolution, assembly, hand-off, then history append and CRM
// reconciliation only after the hand-off succeeds.
type CheckoutService interface {
	// AssembleOrder validates the customer fields and produces an
	// immutable order from the snapshot. It neither persists nor hands
	// off. An empty snapshot is rejected with model.ErrEmptyCart;
	// field-level failures are returned as model.ValidationErrors.
	AssembleOrder(lines []model.CartLine, customer model.CustomerInfo, fee *decimal.Decimal) (model.Order, error)

	// Checkout runs the full pipeline for the given cart session.
	Checkout(ctx context.Context, sessionToken string, req CheckoutRequest) (CheckoutResult, error)
}

// CRMService maintains the deduplicated customer list.
type CRMService interface {
	// Customers returns the persisted customer list, synthesizing it from
	// order history the first time no list exists.
	Customers(ctx context.Context) ([]model.Customer, error)

	// Search filters customers by a case-insensitive substring match on
	// name, phone, email or address.
	Search(ctx context.Context, term string) ([]model.Customer, error)

	// Add creates a customer entered by an administrator.
	Add(ctx context.Context, customer model.Customer) (model.Customer, error)

	// Update applies changes to an existing customer.
	Update(ctx context.Context, customer model.Customer) error

	// RecordOrder reconciles a successfully handed-off order into the
	// customer list: refreshes name/address/neighborhood, bumps the order
	// count and last order date, creating the customer when the phone is
	// new. Orders without a phone are ignored.
	RecordOrder(ctx context.Context, order model.Order) error
}

// AdminService implements the shared-password admin gate and the storefront
// settings. This is a placeholder access gate, not a security boundary.
type AdminService interface {
	// Login checks the password and issues a session token on success.
	Login(ctx context.Context, password string) (token string, err error)

	// Logout revokes a session token.
	Logout(ctx context.Context, token string) error

	// SessionValid reports whether a session token is active.
	SessionValid(ctx context.Context, token string) (bool, error)

	// BusinessNumber returns the WhatsApp destination number, falling back
	// to the configured default when none has been saved.
	BusinessNumber(ctx context.Context) (string, error)

	// SetBusinessNumber saves the WhatsApp destination number.
	SetBusinessNumber(ctx context.Context, number string) error
}
