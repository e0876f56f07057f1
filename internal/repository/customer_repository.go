package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"agua-gas/internal/model"
	"agua-gas/internal/store"

	"github.com/rs/zerolog"
)

// customerRepository implements CustomerRepository over the KV store.
type customerRepository struct {
	kv     store.KV
	logger zerolog.Logger
}

// NewCustomerRepository creates a KV-backed customer repository.
func NewCustomerRepository(kv store.KV, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// List returns all customers and whether a list has ever been persisted.
// A malformed stored list counts as never persisted so the CRM can
// re-synthesize it from order history.
func (r *customerRepository) List(ctx context.Context) ([]model.Customer, bool, error) {
	data, found, err := r.kv.Read(ctx, store.KeyCustomers)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read customers: %w", err)
	}
	if !found {
		return []model.Customer{}, false, nil
	}

	var customers []model.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		r.logger.Warn().Err(err).Msg("malformed customer list, falling back to empty")
		return []model.Customer{}, false, nil
	}
	return customers, true, nil
}

// Save replaces the whole customer list.
func (r *customerRepository) Save(ctx context.Context, customers []model.Customer) error {
	data, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("failed to encode customers: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyCustomers, data); err != nil {
		return fmt.Errorf("failed to persist customers: %w", err)
	}

	r.logger.Debug().Int("count", len(customers)).Msg("customer list saved")
	return nil
}
