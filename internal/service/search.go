package service

import (
	"context"
	"strings"

	"legalapi/internal/apperr"
	"legalapi/internal/model"
	"legalapi/internal/repository"
)

// SearchService translates free text into the full-text case search.
type SearchService interface {
	// Cases returns the cases whose search document matches the
	// Spanish-stemmed query. Empty query text is rejected.
	Cases(ctx context.Context, query string) ([]model.Case, error)
}

type searchService struct {
	cases repository.CaseRepository
}

// NewSearchService constructs a new SearchService.
func NewSearchService(cases repository.CaseRepository) SearchService {
	return &searchService{cases: cases}
}

func (s *searchService) Cases(ctx context.Context, query string) ([]model.Case, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.ErrInvalidQuery
	}
	return s.cases.Search(ctx, query)
}
