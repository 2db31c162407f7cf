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

// LawyerService defines the use cases for lawyers.
type LawyerService interface {
	List(ctx context.Context) ([]model.Lawyer, error)
	Get(ctx context.Context, id string) (*model.Lawyer, error)
	Create(ctx context.Context, in model.LawyerInput) (*model.Lawyer, error)
	Update(ctx context.Context, id string, u model.LawyerUpdate) (*model.Lawyer, error)
	Delete(ctx context.Context, id string) error
}

type lawyerService struct {
	repo  repository.LawyerRepository
	check integrity.Checker
}

// NewLawyerService constructs a new LawyerService.
func NewLawyerService(repo repository.LawyerRepository, check integrity.Checker) LawyerService {
	return &lawyerService{repo: repo, check: check}
}

func (s *lawyerService) List(ctx context.Context) ([]model.Lawyer, error) {
	return s.repo.List(ctx)
}

func (s *lawyerService) Get(ctx context.Context, id string) (*model.Lawyer, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperr.NotFoundError{Kind: apperr.KindLawyer, ID: id}
		}
		return nil, err
	}
	return l, nil
}

func (s *lawyerService) Create(ctx context.Context, in model.LawyerInput) (*model.Lawyer, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, apperr.RequiredFields("first_name", "last_name", "email")
	}
	if err := s.check.UniqueEmail(ctx, apperr.KindLawyer, in.Email, ""); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.Lawyer{
		ID:         uuid.New().String(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Specialty:  in.Specialty,
		Phone:      in.Phone,
		HourlyRate: in.HourlyRate,
	})
}

func (s *lawyerService) Update(ctx context.Context, id string, u model.LawyerUpdate) (*model.Lawyer, error) {
	if err := s.check.Exists(ctx, apperr.KindLawyer, id); err != nil {
		return nil, err
	}
	if u.Email != nil {
		if err := s.check.UniqueEmail(ctx, apperr.KindLawyer, *u.Email, id); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, u)
}

func (s *lawyerService) Delete(ctx context.Context, id string) error {
	if err := s.check.Exists(ctx, apperr.KindLawyer, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
