package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"legalapi/internal/apperr"
	"legalapi/internal/integrity"
	"legalapi/internal/model"
	"legalapi/internal/repository"
	"legalapi/internal/storage"
)

// ErrReaderNil is returned when an upload is attempted without content.
var ErrReaderNil = errors.New("reader is nil")

// CaseDocumentService handles case paperwork: content in object
// storage, metadata rows in the database.
type CaseDocumentService interface {
	// Upload stores the content under a generated key, saves the
	// metadata row, and rolls the object back if the save fails.
	Upload(ctx context.Context, caseID string, r io.Reader, originalFilename, contentType string, size int64) (*model.CaseDocument, error)

	// ListByCase returns a case's documents, newest first.
	ListByCase(ctx context.Context, caseID string) ([]model.CaseDocument, error)

	// Download streams a document's content alongside its metadata.
	Download(ctx context.Context, id string) (io.ReadCloser, *model.CaseDocument, error)

	// PresignURL returns a time-limited download URL for a document.
	PresignURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes a document from storage, then its metadata row.
	Delete(ctx context.Context, id string) error
}

type caseDocumentService struct {
	store storage.Storage
	repo  repository.CaseDocumentRepository
	check integrity.Checker
}

// NewCaseDocumentService constructs a new CaseDocumentService.
func NewCaseDocumentService(
	store storage.Storage,
	repo repository.CaseDocumentRepository,
	check integrity.Checker,
) CaseDocumentService {
	return &caseDocumentService{store: store, repo: repo, check: check}
}

func (s *caseDocumentService) Upload(ctx context.Context, caseID string, r io.Reader, originalFilename, contentType string, size int64) (*model.CaseDocument, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := s.check.Exists(ctx, apperr.KindCase, caseID); err != nil {
		return nil, err
	}

	// Stored name is a UUID plus the original extension.
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("cases", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"case-id":           caseID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.CaseDocument{
		ID:          uuid.New().String(),
		CaseID:      caseID,
		Filename:    originalFilename,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: contentType,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: drop the object so no orphan is left behind.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *caseDocumentService) ListByCase(ctx context.Context, caseID string) ([]model.CaseDocument, error) {
	if err := s.check.Exists(ctx, apperr.KindCase, caseID); err != nil {
		return nil, err
	}
	return s.repo.ByCase(ctx, caseID)
}

func (s *caseDocumentService) Download(ctx context.Context, id string) (io.ReadCloser, *model.CaseDocument, error) {
	doc, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("get from storage: %w", err)
	}
	return rc, doc, nil
}

func (s *caseDocumentService) PresignURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	doc, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, doc.StoragePath, expiry)
}

func (s *caseDocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Storage first; a failure keeps the row so the object stays reachable.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *caseDocumentService) find(ctx context.Context, id string) (*model.CaseDocument, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperr.NotFoundError{Kind: apperr.KindDocument, ID: id}
		}
		return nil, err
	}
	return doc, nil
}
