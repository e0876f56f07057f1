package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"agua-gas/internal/model"
	"agua-gas/internal/store"

	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository over the KV store.
type orderRepository struct {
	kv     store.KV
	logger zerolog.Logger
}

// NewOrderRepository creates a KV-backed order history repository.
func NewOrderRepository(kv store.KV, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// List returns the full order history in storage order. Malformed stored
// data is replaced by the empty history rather than failing the request.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	data, found, err := r.kv.Read(ctx, store.KeyOrderHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to read order history: %w", err)
	}
	if !found {
		return []model.Order{}, nil
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		r.logger.Warn().Err(err).Msg("malformed order history, falling back to empty")
		return []model.Order{}, nil
	}
	return orders, nil
}

// Append adds an order to the history.
func (r *orderRepository) Append(ctx context.Context, order model.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode order history: %w", err)
	}
	if err := r.kv.Write(ctx, store.KeyOrderHistory, data); err != nil {
		return fmt.Errorf("failed to persist order history: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("history_size", len(orders)).
		Msg("order appended to history")
	return nil
}
