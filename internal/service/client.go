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

// ClientService defines the use cases for clients. Get assembles the
// joined projection with the client's cases and receipts.
type ClientService interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id string) (*model.ClientDetail, error)
	Create(ctx context.Context, in model.ClientInput) (*model.Client, error)
	Update(ctx context.Context, id string, u model.ClientUpdate) (*model.Client, error)
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	repo     repository.ClientRepository
	cases    repository.CaseRepository
	receipts repository.ReceiptRepository
	check    integrity.Checker
}

// NewClientService constructs a new ClientService.
func NewClientService(
	repo repository.ClientRepository,
	cases repository.CaseRepository,
	receipts repository.ReceiptRepository,
	check integrity.Checker,
) ClientService {
	return &clientService{repo: repo, cases: cases, receipts: receipts, check: check}
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (*model.ClientDetail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperr.NotFoundError{Kind: apperr.KindClient, ID: id}
		}
		return nil, err
	}
	cases, err := s.cases.ByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receipts.ByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.ClientDetail{Client: *c, Cases: cases, Receipts: receipts}, nil
}

func (s *clientService) Create(ctx context.Context, in model.ClientInput) (*model.Client, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, apperr.RequiredFields("first_name", "last_name", "email")
	}
	if err := s.check.UniqueEmail(ctx, apperr.KindClient, in.Email, ""); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.Client{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
	})
}

func (s *clientService) Update(ctx context.Context, id string, u model.ClientUpdate) (*model.Client, error) {
	if err := s.check.Exists(ctx, apperr.KindClient, id); err != nil {
		return nil, err
	}
	if u.Email != nil {
		if err := s.check.UniqueEmail(ctx, apperr.KindClient, *u.Email, id); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, u)
}

// Delete removes a client once nothing references it. Cases are checked
// before receipts, so the reported blockers match the first failing kind.
func (s *clientService) Delete(ctx context.Context, id string) error {
	if err := s.check.Exists(ctx, apperr.KindClient, id); err != nil {
		return err
	}
	if err := s.check.NoDependents(ctx, apperr.KindClient, id,
		integrity.Dependency{Kind: apperr.KindCase, FKColumn: "client_id"},
		integrity.Dependency{Kind: apperr.KindReceipt, FKColumn: "client_id"},
	); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
