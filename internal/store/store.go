// Package store provides the persistent key-value boundary the storefront
// keeps its collections in. Values are opaque serialized blobs; parsing and
// validation happen in the repository layer.
package store

import "context"

// KV is a minimal durable key-value store. Read reports presence separately
// from errors so callers can distinguish "never written" from a failed read.
type KV interface {
	// Read returns the value stored under key, if any.
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write durably stores value under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Well-known keys. These mirror the collections the storefront persists.
const (
	KeyDeliveryFees   = "deliveryFees"
	KeyOrderHistory   = "orderHistory"
	KeyCustomers      = "customers"
	KeyBusinessNumber = "businessWhatsAppNumber"
	KeyAdminSessions  = "adminSessions"
)
