package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agua-gas/internal/cart"
	"agua-gas/internal/handoff"
	"agua-gas/internal/model"
	"agua-gas/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	carts    *cart.Manager
	fees     DeliveryFeeService
	crm      CRMService
	admin    AdminService
	orders   repository.OrderRepository
	handoff  handoff.Handoff
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	carts *cart.Manager,
	fees DeliveryFeeService,
	crm CRMService,
	admin AdminService,
	orders repository.OrderRepository,
	h handoff.Handoff,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		carts:    carts,
		fees:     fees,
		crm:      crm,
		admin:    admin,
		orders:   orders,
		handoff:  h,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With().Str("service", "checkout").Logger(),
	}
}

// AssembleOrder validates the customer fields and produces an immutable
// order from the snapshot. The snapshot is used as-is; callers obtain it via
// cart.Snapshot so the live cart cannot reach into the order afterwards.
func (s *checkoutService) AssembleOrder(lines []model.CartLine, customer model.CustomerInfo, fee *decimal.Decimal) (model.Order, error) {
	if len(lines) == 0 {
		return model.Order{}, model.ErrEmptyCart
	}

	if err := s.validateCustomer(customer); err != nil {
		return model.Order{}, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	var feeCopy *decimal.Decimal
	if fee != nil {
		f := *fee
		feeCopy = &f
	}

	return model.Order{
		ID:            uuid.New(),
		Lines:         lines,
		CustomerName:  customer.Name,
		Phone:         customer.Phone,
		Address:       customer.Address,
		Neighborhood:  customer.Neighborhood,
		PaymentMethod: customer.PaymentMethod,
		Observations:  customer.Observations,
		Subtotal:      subtotal,
		DeliveryFee:   feeCopy,
		CreatedAt:     time.Now(),
	}, nil
}

// Checkout runs the full pipeline. History append, CRM reconciliation and
// cart clearing happen only after the hand-off succeeds, so a failed
// hand-off can be retried without duplicating history or losing the cart.
func (s *checkoutService) Checkout(ctx context.Context, sessionToken string, req CheckoutRequest) (CheckoutResult, error) {
	var lines []model.CartLine
	err := s.carts.With(sessionToken, func(c *cart.Cart) error {
		lines = c.Snapshot()
		return nil
	})
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to read cart: %w", err)
	}

	if len(lines) == 0 {
		s.logger.Warn().Str("session", sessionToken).Msg("checkout attempted with empty cart")
		return CheckoutResult{}, model.ErrEmptyCart
	}

	var fee *decimal.Decimal
	if req.Customer.Neighborhood != "" {
		amount, found, err := s.fees.FeeFor(ctx, req.Customer.Neighborhood)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("failed to resolve delivery fee: %w", err)
		}
		if !found {
			s.logger.Warn().
				Str("neighborhood", req.Customer.Neighborhood).
				Msg("checkout blocked: neighborhood has no configured delivery fee")
			return CheckoutResult{}, model.ErrFeeNotConfigured
		}
		fee = &amount
	}

	order, err := s.AssembleOrder(lines, req.Customer, fee)
	if err != nil {
		return CheckoutResult{}, err
	}

	businessNumber, err := s.admin.BusinessNumber(ctx)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to load business number: %w", err)
	}

	result, err := s.handoff.Prepare(order, businessNumber)
	if err != nil {
		// The cart stays populated and the history untouched; the user can
		// retry without duplicating anything.
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("hand-off failed")
		if errors.Is(err, model.ErrHandoffFailed) {
			return CheckoutResult{}, err
		}
		return CheckoutResult{}, fmt.Errorf("%w: %v", model.ErrHandoffFailed, err)
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.crm.RecordOrder(ctx, order); err != nil {
		// The order is already in history; losing one CRM update is
		// recoverable, failing the checkout at this point is not.
		s.logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("failed to reconcile customer list")
	}

	s.carts.With(sessionToken, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("line_count", len(order.Lines)).
		Str("subtotal", order.Subtotal.StringFixed(2)).
		Msg("order checked out")

	return CheckoutResult{Order: order, Handoff: result}, nil
}

// validateCustomer maps validator failures onto per-field messages keyed by
// the JSON field names the form uses.
func (s *checkoutService) validateCustomer(customer model.CustomerInfo) error {
	err := s.validate.Struct(customer)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("failed to validate customer: %w", err)
	}

	fieldErrs := model.ValidationErrors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrs[fieldName(fe.Field())] = fieldMessage(fe)
		}
	}
	return fieldErrs
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Phone":
		return "phone"
	case "Address":
		return "address"
	case "Neighborhood":
		return "neighborhood"
	case "PaymentMethod":
		return "paymentMethod"
	case "Observations":
		return "observations"
	default:
		return structField
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return "Invalid value"
	}
}
