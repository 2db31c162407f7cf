package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"legalapi/internal/model"
)

type MockCaseDocumentService struct {
	mock.Mock
}

func (m *MockCaseDocumentService) Upload(ctx context.Context, caseID string, r io.Reader, originalFilename, contentType string, size int64) (*model.CaseDocument, error) {
	args := m.Called(ctx, caseID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentService) ListByCase(ctx context.Context, caseID string) ([]model.CaseDocument, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockCaseDocumentService) Download(ctx context.Context, id string) (io.ReadCloser, *model.CaseDocument, error) {
	args := m.Called(ctx, id)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var doc *model.CaseDocument
	if args.Get(1) != nil {
		doc = args.Get(1).(*model.CaseDocument)
	}
	return rc, doc, args.Error(2)
}

func (m *MockCaseDocumentService) PresignURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockCaseDocumentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
