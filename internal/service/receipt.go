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

// ReceiptService defines the use cases for receipts.
type ReceiptService interface {
	List(ctx context.Context) ([]model.ReceiptWithNames, error)
	Get(ctx context.Context, id string) (*model.ReceiptWithNames, error)
	ByLawyer(ctx context.Context, lawyerID string) ([]model.ReceiptWithNames, error)
	ByClient(ctx context.Context, clientID string) ([]model.ReceiptWithNames, error)
	Create(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error)
	Update(ctx context.Context, id string, u model.ReceiptUpdate) (*model.Receipt, error)
	Delete(ctx context.Context, id string) error
}

type receiptService struct {
	repo  repository.ReceiptRepository
	check integrity.Checker
}

// NewReceiptService constructs a new ReceiptService.
func NewReceiptService(repo repository.ReceiptRepository, check integrity.Checker) ReceiptService {
	return &receiptService{repo: repo, check: check}
}

func (s *receiptService) List(ctx context.Context) ([]model.ReceiptWithNames, error) {
	return s.repo.List(ctx)
}

func (s *receiptService) Get(ctx context.Context, id string) (*model.ReceiptWithNames, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperr.NotFoundError{Kind: apperr.KindReceipt, ID: id}
		}
		return nil, err
	}
	return rec, nil
}

func (s *receiptService) ByLawyer(ctx context.Context, lawyerID string) ([]model.ReceiptWithNames, error) {
	if err := s.check.Exists(ctx, apperr.KindLawyer, lawyerID); err != nil {
		return nil, err
	}
	return s.repo.ByLawyer(ctx, lawyerID)
}

func (s *receiptService) ByClient(ctx context.Context, clientID string) ([]model.ReceiptWithNames, error) {
	if err := s.check.Exists(ctx, apperr.KindClient, clientID); err != nil {
		return nil, err
	}
	return s.repo.ByClient(ctx, clientID)
}

// Create checks the client and lawyer, and the case when one is linked.
func (s *receiptService) Create(ctx context.Context, in model.ReceiptInput) (*model.Receipt, error) {
	if in.ClientID == "" || in.LawyerID == "" || in.Amount == nil || in.Concept == "" {
		return nil, apperr.RequiredFields("client_id", "lawyer_id", "amount", "concept")
	}
	if err := s.check.Exists(ctx, apperr.KindClient, in.ClientID); err != nil {
		return nil, err
	}
	if err := s.check.Exists(ctx, apperr.KindLawyer, in.LawyerID); err != nil {
		return nil, err
	}
	if in.CaseID != nil {
		if err := s.check.Exists(ctx, apperr.KindCase, *in.CaseID); err != nil {
			return nil, err
		}
	}
	return s.repo.Create(ctx, &model.Receipt{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		LawyerID:      in.LawyerID,
		CaseID:        in.CaseID,
		Amount:        *in.Amount,
		Concept:       in.Concept,
		PaymentMethod: in.PaymentMethod,
	})
}

func (s *receiptService) Update(ctx context.Context, id string, u model.ReceiptUpdate) (*model.Receipt, error) {
	if err := s.check.Exists(ctx, apperr.KindReceipt, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, u)
}

func (s *receiptService) Delete(ctx context.Context, id string) error {
	if err := s.check.Exists(ctx, apperr.KindReceipt, id); err != nil {
		return err
	}
	if err := s.check.NoDependents(ctx, apperr.KindReceipt, id,
		integrity.Dependency{Kind: apperr.KindInvoice, FKColumn: "receipt_id"},
	); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
