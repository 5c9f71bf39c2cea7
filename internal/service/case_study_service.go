package service

import (
	"context"
	"errors"

	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/repository"
)

var ErrCaseStudyNotFound = errors.New("case study not found")

// CaseStudyService defines read operations on the case study catalog
type CaseStudyService interface {
	ListCaseSummaries(ctx context.Context, filter model.CaseStudyFilter) ([]model.CaseSummary, error)
	GetCaseStudy(ctx context.Context, id string) (*model.CaseStudy, error)
}

type caseStudyService struct {
	repo repository.CaseStudyRepository
}

// NewCaseStudyService creates a new CaseStudyService
func NewCaseStudyService(repo repository.CaseStudyRepository) CaseStudyService {
	return &caseStudyService{repo: repo}
}

// ListCaseSummaries returns case summaries in seed order, or in the order of
// filter.IDs when given. Unknown IDs are skipped.
func (s *caseStudyService) ListCaseSummaries(ctx context.Context, filter model.CaseStudyFilter) ([]model.CaseSummary, error) {
	var studies []model.CaseStudy
	if len(filter.IDs) > 0 {
		for _, id := range filter.IDs {
			study, err := s.repo.GetCaseStudyByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if study != nil {
				studies = append(studies, *study)
			}
		}
	} else {
		all, err := s.repo.ListCaseStudies(ctx)
		if err != nil {
			return nil, err
		}
		studies = all
	}

	summaries := make([]model.CaseSummary, 0, len(studies))
	for _, study := range studies {
		if filter.FeaturedOnly && !study.Featured {
			continue
		}
		summaries = append(summaries, model.CaseSummary{
			ID:               study.ID,
			Title:            study.Title,
			ShortDescription: study.ShortDescription,
		})
	}
	return summaries, nil
}

// GetCaseStudy returns ErrCaseStudyNotFound for unknown IDs
func (s *caseStudyService) GetCaseStudy(ctx context.Context, id string) (*model.CaseStudy, error) {
	study, err := s.repo.GetCaseStudyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if study == nil {
		return nil, ErrCaseStudyNotFound
	}
	return study, nil
}
