package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/apperr"
)

type MockProbe struct {
	mock.Mock
}

func (m *MockProbe) IDExists(ctx context.Context, kind apperr.Kind, id string) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProbe) EmailOwner(ctx context.Context, kind apperr.Kind, email string) (string, bool, error) {
	args := m.Called(ctx, kind, email)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockProbe) ReferencingIDs(ctx context.Context, dependent apperr.Kind, fkColumn, id string) ([]string, error) {
	args := m.Called(ctx, dependent, fkColumn, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
