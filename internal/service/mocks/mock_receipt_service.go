package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/model"
)

type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) List(ctx context.Context) ([]model.ReceiptWithNames, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptService) Get(ctx context.Context, id string) (*model.ReceiptWithNames, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptService) ByLawyer(ctx context.Context, lawyerID string) ([]model.ReceiptWithNames, error) {
	args := m.Called(ctx, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptService) ByClient(ctx context.Context, clientID string) ([]model.ReceiptWithNames, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptService) Create(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptService) Update(ctx context.Context, id string, u model.ReceiptUpdate) (*model.Receipt, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
