package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/model"
)

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) List(ctx context.Context, f model.CaseFilter) ([]model.CaseSummary, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseSummary), args.Error(1)
}

func (m *MockCaseRepository) FindByID(ctx context.Context, id string) (*model.CaseDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDetail), args.Error(1)
}

func (m *MockCaseRepository) ByClient(ctx context.Context, clientID string) ([]model.ClientCase, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientCase), args.Error(1)
}

func (m *MockCaseRepository) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) Update(ctx context.Context, id string, u model.CaseUpdate) (*model.Case, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCaseRepository) Search(ctx context.Context, query string) ([]model.Case, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}
