package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/model"
)

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) List(ctx context.Context) ([]model.ReceiptWithNames, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptRepository) FindByID(ctx context.Context, id string) (*model.ReceiptWithNames, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptRepository) ByLawyer(ctx context.Context, lawyerID string) ([]model.ReceiptWithNames, error) {
	args := m.Called(ctx, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptRepository) ByClient(ctx context.Context, clientID string) ([]model.ReceiptWithNames, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReceiptWithNames), args.Error(1)
}

func (m *MockReceiptRepository) ByCase(ctx context.Context, caseID string) ([]model.CaseReceipt, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseReceipt), args.Error(1)
}

func (m *MockReceiptRepository) Create(ctx context.Context, r *model.Receipt) (*model.Receipt, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) Update(ctx context.Context, id string, u model.ReceiptUpdate) (*model.Receipt, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
