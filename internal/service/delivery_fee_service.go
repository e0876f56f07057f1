package service

import (
	"context"
	"fmt"
	"strings"

	"agua-gas/internal/model"
	"agua-gas/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// deliveryFeeService implements DeliveryFeeService.
type deliveryFeeService struct {
	repo   repository.DeliveryFeeRepository
	logger zerolog.Logger
}

// NewDeliveryFeeService creates a new delivery fee service.
func NewDeliveryFeeService(repo repository.DeliveryFeeRepository, logger zerolog.Logger) DeliveryFeeService {
	return &deliveryFeeService{
		repo:   repo,
		logger: logger.With().Str("service", "delivery_fee").Logger(),
	}
}

// List returns all fee records in storage order.
func (s *deliveryFeeService) List(ctx context.Context) ([]model.DeliveryFee, error) {
	fees, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list delivery fees")
		return nil, fmt.Errorf("failed to list delivery fees: %w", err)
	}
	return fees, nil
}

// Upsert adds or replaces the fee for a neighborhood, matching the
// neighborhood name case-insensitively. The replacement keeps the new
// record's identifier.
func (s *deliveryFeeService) Upsert(ctx context.Context, fee model.DeliveryFee) error {
	if fee.Neighborhood == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Neighborhood name is required")
	}
	if fee.Fee.IsNegative() {
		return model.NewDomainError(model.ErrCodeValidation, "Delivery fee cannot be negative")
	}

	fees, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load delivery fees: %w", err)
	}

	replaced := false
	for i := range fees {
		if strings.EqualFold(fees[i].Neighborhood, fee.Neighborhood) {
			fees[i] = fee
			replaced = true
			break
		}
	}
	if !replaced {
		fees = append(fees, fee)
	}

	if err := s.repo.Save(ctx, fees); err != nil {
		s.logger.Error().Err(err).Str("neighborhood", fee.Neighborhood).Msg("failed to save delivery fee")
		return fmt.Errorf("failed to save delivery fee: %w", err)
	}

	s.logger.Info().
		Str("neighborhood", fee.Neighborhood).
		Str("fee", fee.Fee.StringFixed(2)).
		Bool("replaced", replaced).
		Msg("delivery fee upserted")
	return nil
}

// Remove deletes the record with the given identifier.
func (s *deliveryFeeService) Remove(ctx context.Context, id string) error {
	fees, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load delivery fees: %w", err)
	}

	kept := fees[:0]
	for _, f := range fees {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(fees) {
		// Absent ID is a no-op.
		return nil
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		s.logger.Error().Err(err).Str("fee_id", id).Msg("failed to remove delivery fee")
		return fmt.Errorf("failed to remove delivery fee: %w", err)
	}

	s.logger.Info().Str("fee_id", id).Msg("delivery fee removed")
	return nil
}

// FeeFor looks up the fee for a neighborhood. A configured zero fee returns
// (0, true); an unconfigured neighborhood returns (_, false). Callers must
// not conflate the two.
func (s *deliveryFeeService) FeeFor(ctx context.Context, neighborhood string) (decimal.Decimal, bool, error) {
	fees, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to load delivery fees: %w", err)
	}

	for _, f := range fees {
		if strings.EqualFold(f.Neighborhood, neighborhood) {
			return f.Fee, true, nil
		}
	}
	return decimal.Zero, false, nil
}
