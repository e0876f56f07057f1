package service

import (
	"context"

	"agua-gas/internal/handoff"
	"agua-gas/internal/model"

	"github.com/stretchr/testify/mock"
)

// Stateful in-memory repository fakes shared by the service tests.

type fakeFeeRepo struct {
	fees []model.DeliveryFee
}

func (f *fakeFeeRepo) List(context.Context) ([]model.DeliveryFee, error) {
	out := make([]model.DeliveryFee, len(f.fees))
	copy(out, f.fees)
	return out, nil
}

func (f *fakeFeeRepo) Save(_ context.Context, fees []model.DeliveryFee) error {
	f.fees = append([]model.DeliveryFee(nil), fees...)
	return nil
}

type fakeOrderRepo struct {
	orders []model.Order
}

func (f *fakeOrderRepo) List(context.Context) ([]model.Order, error) {
	out := make([]model.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) Append(_ context.Context, order model.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

type fakeCustomerRepo struct {
	customers []model.Customer
	persisted bool
}

func (f *fakeCustomerRepo) List(context.Context) ([]model.Customer, bool, error) {
	out := make([]model.Customer, len(f.customers))
	copy(out, f.customers)
	return out, f.persisted, nil
}

func (f *fakeCustomerRepo) Save(_ context.Context, customers []model.Customer) error {
	f.customers = append([]model.Customer(nil), customers...)
	f.persisted = true
	return nil
}

type fakeSettingsRepo struct {
	number   string
	sessions map[string]bool
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{sessions: make(map[string]bool)}
}

func (f *fakeSettingsRepo) BusinessNumber(context.Context) (string, error) {
	return f.number, nil
}

func (f *fakeSettingsRepo) SetBusinessNumber(_ context.Context, number string) error {
	f.number = number
	return nil
}

func (f *fakeSettingsRepo) AdminSessionValid(_ context.Context, token string) (bool, error) {
	return f.sessions[token], nil
}

func (f *fakeSettingsRepo) AddAdminSession(_ context.Context, token string) error {
	f.sessions[token] = true
	return nil
}

func (f *fakeSettingsRepo) RemoveAdminSession(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

// MockHandoff is a mock implementation of handoff.Handoff.
type MockHandoff struct {
	mock.Mock
}

func (m *MockHandoff) Prepare(order model.Order, businessNumber string) (handoff.Result, error) {
	args := m.Called(order, businessNumber)
	return args.Get(0).(handoff.Result), args.Error(1)
}
