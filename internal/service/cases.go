package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"legalapi/internal/apperr"
	"legalapi/internal/integrity"
	"legalapi/internal/model"
	"legalapi/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// CaseService defines the use cases for cases.
type CaseService interface {
	List(ctx context.Context, f model.CaseFilter) ([]model.CaseSummary, error)
	Get(ctx context.Context, id string) (*model.CaseDetail, error)
	Create(ctx context.Context, in model.CaseInput) (*model.Case, error)
	Update(ctx context.Context, id string, u model.CaseUpdate) (*model.Case, error)
	Delete(ctx context.Context, id string) error
}

type caseService struct {
	repo     repository.CaseRepository
	receipts repository.ReceiptRepository
	check    integrity.Checker
}

// NewCaseService constructs a new CaseService.
func NewCaseService(
	repo repository.CaseRepository,
	receipts repository.ReceiptRepository,
	check integrity.Checker,
) CaseService {
	return &caseService{repo: repo, receipts: receipts, check: check}
}

func (s *caseService) List(ctx context.Context, f model.CaseFilter) ([]model.CaseSummary, error) {
	if f.Page <= 0 {
		f.Page = defaultPage
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	return s.repo.List(ctx, f)
}

func (s *caseService) Get(ctx context.Context, id string) (*model.CaseDetail, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperr.NotFoundError{Kind: apperr.KindCase, ID: id}
		}
		return nil, err
	}
	receipts, err := s.receipts.ByCase(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Receipts = receipts
	return d, nil
}

// Create verifies the owning lawyer and client exist before inserting.
// The checks are a fast path only; a concurrent delete between check and
// insert is caught by the foreign keys.
func (s *caseService) Create(ctx context.Context, in model.CaseInput) (*model.Case, error) {
	if in.LawyerID == "" || in.ClientID == "" || in.Title == "" {
		return nil, apperr.RequiredFields("lawyer_id", "client_id", "case_title")
	}
	if err := s.check.Exists(ctx, apperr.KindLawyer, in.LawyerID); err != nil {
		return nil, err
	}
	if err := s.check.Exists(ctx, apperr.KindClient, in.ClientID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.Case{
		ID:          uuid.New().String(),
		LawyerID:    in.LawyerID,
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
	})
}

func (s *caseService) Update(ctx context.Context, id string, u model.CaseUpdate) (*model.Case, error) {
	if err := s.check.Exists(ctx, apperr.KindCase, id); err != nil {
		return nil, err
	}
	if u.Status != nil && !model.ValidCaseStatus(*u.Status) {
		return nil, &apperr.ValidationError{Message: "case_status debe ser Open, In-Progress o Closed"}
	}
	return s.repo.Update(ctx, id, u)
}

func (s *caseService) Delete(ctx context.Context, id string) error {
	if err := s.check.Exists(ctx, apperr.KindCase, id); err != nil {
		return err
	}
	if err := s.check.NoDependents(ctx, apperr.KindCase, id,
		integrity.Dependency{Kind: apperr.KindReceipt, FKColumn: "case_id"},
		integrity.Dependency{Kind: apperr.KindDocument, FKColumn: "case_id"},
	); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
