// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) QuoteRate(ctx context.Context, req dto.QuoteRateRequest) model.RateQuote {
	args := m.Called(ctx, req)
	return args.Get(0).(model.RateQuote)
}

func (m *MockShippingService) CreateShipment(ctx context.Context, req dto.CreateShipmentRequest) (model.Shipment, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Shipment), args.Error(1)
}

func (m *MockShippingService) TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackingEvent), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (model.PaymentOrder, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.PaymentOrder), args.Error(1)
}

func (m *MockPaymentService) ProcessCallback(ctx context.Context, data, ss1 string) (model.CallbackResult, error) {
	args := m.Called(ctx, data, ss1)
	return args.Get(0).(model.CallbackResult), args.Error(1)
}

func (m *MockPaymentService) ListPendingPayments(ctx context.Context, limit int) ([]model.PaymentRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentRecord), args.Error(1)
}

type MockPickupPointService struct {
	mock.Mock
}

func (m *MockPickupPointService) ListPickupPoints(ctx context.Context, filter venipak.PickupPointFilter) []model.PickupPoint {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.PickupPoint)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
