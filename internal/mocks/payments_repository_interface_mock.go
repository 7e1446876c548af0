// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ScriptVenture/checkout-service/internal/repository"
)

type MockPaymentsRepositoryInterface struct {
	mock.Mock
}

func (m *MockPaymentsRepositoryInterface) Create(ctx context.Context, doc *repository.PaymentDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockPaymentsRepositoryInterface) UpdateStatus(ctx context.Context, orderID, status string, raw map[string]string) error {
	args := m.Called(ctx, orderID, status, raw)
	return args.Error(0)
}

func (m *MockPaymentsRepositoryInterface) GetByOrderID(ctx context.Context, orderID string) (*repository.PaymentDocument, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PaymentDocument), args.Error(1)
}

func (m *MockPaymentsRepositoryInterface) ListByStatus(ctx context.Context, status string, limit int) ([]repository.PaymentDocument, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PaymentDocument), args.Error(1)
}
