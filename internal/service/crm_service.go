package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agua-gas/internal/model"
	"agua-gas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// crmService implements CRMService.
type crmService struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	logger    zerolog.Logger
}

// NewCRMService creates a new CRM service.
func NewCRMService(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	logger zerolog.Logger,
) CRMService {
	return &crmService{
		customers: customers,
		orders:    orders,
		logger:    logger.With().Str("service", "crm").Logger(),
	}
}

// Customers returns the persisted customer list. When no list has ever been
// persisted it is synthesized once from the order history and saved; from
// then on the persisted list is the source of truth.
func (s *crmService) Customers(ctx context.Context) ([]model.Customer, error) {
	customers, persisted, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	if persisted {
		return customers, nil
	}

	history, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	synthesized := SynthesizeCustomers(history, time.Now())
	if err := s.customers.Save(ctx, synthesized); err != nil {
		return nil, fmt.Errorf("failed to save synthesized customers: %w", err)
	}

	s.logger.Info().
		Int("order_count", len(history)).
		Int("customer_count", len(synthesized)).
		Msg("customer list synthesized from order history")
	return synthesized, nil
}

// Search filters customers by a case-insensitive substring match on name,
// phone, email or address.
func (s *crmService) Search(ctx context.Context, term string) ([]model.Customer, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return customers, nil
	}

	needle := strings.ToLower(term)
	var out []model.Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(strings.ToLower(c.Address), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Add creates a customer entered by an administrator.
func (s *crmService) Add(ctx context.Context, customer model.Customer) (model.Customer, error) {
	if customer.Name == "" || customer.Phone == "" {
		return model.Customer{}, model.NewDomainError(model.ErrCodeValidation, "Customer name and phone are required")
	}

	customers, err := s.Customers(ctx)
	if err != nil {
		return model.Customer{}, err
	}

	customer.ID = uuid.NewString()
	customer.TotalOrders = 0
	customer.CreatedAt = time.Now()

	customers = append(customers, customer)
	if err := s.customers.Save(ctx, customers); err != nil {
		return model.Customer{}, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer added")
	return customer, nil
}

// Update applies changes to an existing customer, matched by ID.
func (s *crmService) Update(ctx context.Context, customer model.Customer) error {
	customers, err := s.Customers(ctx)
	if err != nil {
		return err
	}

	for i := range customers {
		if customers[i].ID == customer.ID {
			// Creation time and order statistics are not client-editable.
			customer.CreatedAt = customers[i].CreatedAt
			customer.TotalOrders = customers[i].TotalOrders
			customer.LastOrderDate = customers[i].LastOrderDate
			customers[i] = customer

			if err := s.customers.Save(ctx, customers); err != nil {
				return fmt.Errorf("failed to save customer: %w", err)
			}
			s.logger.Info().Str("customer_id", customer.ID).Msg("customer updated")
			return nil
		}
	}
	return model.ErrCustomerNotFound
}

// RecordOrder reconciles a handed-off order into the customer list. When the
// list has never been persisted the bootstrap synthesis already covers this
// order, because it is appended to history before reconciliation runs.
func (s *crmService) RecordOrder(ctx context.Context, order model.Order) error {
	if order.Phone == "" {
		// Orders without a phone cannot be attributed to a customer.
		return nil
	}

	customers, persisted, err := s.customers.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	if !persisted {
		_, err := s.Customers(ctx)
		return err
	}

	orderDate := order.CreatedAt
	for i := range customers {
		if customers[i].Phone == order.Phone {
			customers[i].Name = order.CustomerName
			customers[i].Address = order.Address
			if order.Neighborhood != "" {
				customers[i].Neighborhood = order.Neighborhood
			}
			customers[i].TotalOrders++
			if customers[i].LastOrderDate == nil || orderDate.After(*customers[i].LastOrderDate) {
				customers[i].LastOrderDate = &orderDate
			}
			return s.customers.Save(ctx, customers)
		}
	}

	customers = append(customers, model.Customer{
		ID:            uuid.NewString(),
		Name:          order.CustomerName,
		Phone:         order.Phone,
		Address:       order.Address,
		Neighborhood:  order.Neighborhood,
		TotalOrders:   1,
		LastOrderDate: &orderDate,
		CreatedAt:     time.Now(),
	})
	return s.customers.Save(ctx, customers)
}

// SynthesizeCustomers derives one customer per distinct non-empty phone
// number in the order history. The scan is a single pass: the last processed
// order for a phone wins for name, address and neighborhood, the order count
// is the number of orders seen, and the last order date is the greatest
// timestamp. Identifiers are freshly generated and createdAt is the
// synthesis time, not the first order time.
func SynthesizeCustomers(orders []model.Order, now time.Time) []model.Customer {
	type accumulator struct {
		name         string
		address      string
		neighborhood string
		dates        []time.Time
	}

	byPhone := make(map[string]*accumulator)
	var phones []string // keeps output in first-seen order

	for _, order := range orders {
		if order.Phone == "" {
			continue
		}

		acc, seen := byPhone[order.Phone]
		if !seen {
			acc = &accumulator{}
			byPhone[order.Phone] = acc
			phones = append(phones, order.Phone)
		}
		acc.name = order.CustomerName
		acc.address = order.Address
		acc.neighborhood = order.Neighborhood
		acc.dates = append(acc.dates, order.CreatedAt)
	}

	customers := make([]model.Customer, 0, len(phones))
	for _, phone := range phones {
		acc := byPhone[phone]

		last := acc.dates[0]
		for _, d := range acc.dates[1:] {
			if d.After(last) {
				last = d
			}
		}
		lastCopy := last

		customers = append(customers, model.Customer{
			ID:            uuid.NewString(),
			Name:          acc.name,
			Phone:         phone,
			Address:       acc.address,
			Neighborhood:  acc.neighborhood,
			TotalOrders:   len(acc.dates),
			LastOrderDate: &lastCopy,
			CreatedAt:     now,
		})
	}
	return customers
}
