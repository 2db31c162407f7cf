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

// InvoiceService defines the use cases for invoices.
type InvoiceService interface {
	List(ctx context.Context) ([]model.Invoice, error)
	Get(ctx context.Context, id string) (*model.Invoice, error)
	Create(ctx context.Context, in model.InvoiceInput) (*model.Invoice, error)
	Update(ctx context.Context, id string, u model.InvoiceUpdate) (*model.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type invoiceService struct {
	repo  repository.InvoiceRepository
	check integrity.Checker
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository, check integrity.Checker) InvoiceService {
	return &invoiceService{repo: repo, check: check}
}

func (s *invoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *invoiceService) Get(ctx context.Context, id string) (*model.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperr.NotFoundError{Kind: apperr.KindInvoice, ID: id}
		}
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Create(ctx context.Context, in model.InvoiceInput) (*model.Invoice, error) {
	if in.ReceiptID == "" || in.InvoiceNumber == "" || in.TotalAmount == nil {
		return nil, apperr.RequiredFields("receipt_id", "invoice_number", "total_amount")
	}
	if err := s.check.Exists(ctx, apperr.KindReceipt, in.ReceiptID); err != nil {
		return nil, err
	}
	inv := &model.Invoice{
		ID:            uuid.New().String(),
		ReceiptID:     in.ReceiptID,
		InvoiceNumber: in.InvoiceNumber,
		DueDate:       in.DueDate,
		TaxAmount:     in.TaxAmount,
		TotalAmount:   *in.TotalAmount,
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	return s.repo.Create(ctx, inv)
}

func (s *invoiceService) Update(ctx context.Context, id string, u model.InvoiceUpdate) (*model.Invoice, error) {
	if err := s.check.Exists(ctx, apperr.KindInvoice, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, u)
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	if err := s.check.Exists(ctx, apperr.KindInvoice, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
