package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/model"
)

type MockCaseDocumentRepository struct {
	mock.Mock
}

func (m *MockCaseDocumentRepository) Create(ctx context.Context, d *model.CaseDocument) (*model.CaseDocument, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentRepository) FindByID(ctx context.Context, id string) (*model.CaseDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentRepository) ByCase(ctx context.Context, caseID string) ([]model.CaseDocument, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
