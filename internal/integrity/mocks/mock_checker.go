package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/apperr"
	"legalapi/internal/integrity"
)

type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Exists(ctx context.Context, kind apperr.Kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockChecker) UniqueEmail(ctx context.Context, kind apperr.Kind, email, excludeID string) error {
	args := m.Called(ctx, kind, email, excludeID)
	return args.Error(0)
}

func (m *MockChecker) NoDependents(ctx context.Context, parent apperr.Kind, id string, deps ...integrity.Dependency) error {
	callArgs := make([]any, 0, 3+len(deps))
	callArgs = append(callArgs, ctx, parent, id)
	for _, d := range deps {
		callArgs = append(callArgs, d)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}
