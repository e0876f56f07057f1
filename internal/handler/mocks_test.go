package handler

import (
	"context"

	"agua-gas/internal/model"
	"agua-gas/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) AssembleOrder(lines []model.CartLine, customer model.CustomerInfo, fee *decimal.Decimal) (model.Order, error) {
	args := m.Called(lines, customer, fee)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockCheckoutService) Checkout(ctx context.Context, sessionToken string, req service.CheckoutRequest) (service.CheckoutResult, error) {
	args := m.Called(ctx, sessionToken, req)
	return args.Get(0).(service.CheckoutResult), args.Error(1)
}

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *MockAdminService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAdminService) SessionValid(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminService) BusinessNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAdminService) SetBusinessNumber(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

// MockDeliveryFeeService is a mock implementation of service.DeliveryFeeService.
type MockDeliveryFeeService struct {
	mock.Mock
}

func (m *MockDeliveryFeeService) List(ctx context.Context) ([]model.DeliveryFee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryFee), args.Error(1)
}

func (m *MockDeliveryFeeService) Upsert(ctx context.Context, fee model.DeliveryFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockDeliveryFeeService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeliveryFeeService) FeeFor(ctx context.Context, neighborhood string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, neighborhood)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// MockCRMService is a mock implementation of service.CRMService.
type MockCRMService struct {
	mock.Mock
}

func (m *MockCRMService) Customers(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCRMService) Search(ctx context.Context, term string) ([]model.Customer, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCRMService) Add(ctx context.Context, customer model.Customer) (model.Customer, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(model.Customer), args.Error(1)
}

func (m *MockCRMService) Update(ctx context.Context, customer model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCRMService) RecordOrder(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Append(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
