package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"agua-gas/internal/model"
	"agua-gas/internal/store"

	"github.com/rs/zerolog"
)

// deliveryFeeRepository implements DeliveryFeeRepository over the KV store.
type deliveryFeeRepository struct {
	kv     store.KV
	logger zerolog.Logger
}

// NewDeliveryFeeRepository creates a KV-backed delivery fee repository.
func NewDeliveryFeeRepository(kv store.KV, logger zerolog.Logger) DeliveryFeeRepository {
	return &deliveryFeeRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "delivery_fee").Logger(),
	}
}

// List returns all fee records in storage order. Malformed stored data is
// replaced by the empty table rather than failing the request.
func (r *deliveryFeeRepository) List(ctx context.Context) ([]model.DeliveryFee, error) {
	data, found, err := r.kv.Read(ctx, store.KeyDeliveryFees)
	if err != nil {
		return nil, fmt.Errorf("failed to read delivery fees: %w", err)
	}
	if !found {
		return []model.DeliveryFee{}, nil
	}

	var fees []model.DeliveryFee
	if err := json.Unmarshal(data, &fees); err != nil {
		r.logger.Warn().Err(err).Msg("malformed delivery fee table, falling back to empty")
		return []model.DeliveryFee{}, nil
	}
	return fees, nil
}

// Save replaces the whole table.
func (r *deliveryFeeRepository) Save(ctx context.Context, fees []model.DeliveryFee) error {
	data, err := json.Marshal(fees)
	if err != nil {
		return fmt.Errorf("failed to encode delivery fees: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyDeliveryFees, data); err != nil {
		return fmt.Errorf("failed to persist delivery fees: %w", err)
	}

	r.logger.Debug().Int("count", len(fees)).Msg("delivery fee table saved")
	return nil
}
