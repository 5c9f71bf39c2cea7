package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Charugundlavipul/medilink/internal/model"
)

// CaseStudyRepository defines read access to case studies
type CaseStudyRepository interface {
	// ListCaseStudies returns every case study in seed order
	ListCaseStudies(ctx context.Context) ([]model.CaseStudy, error)
	// GetCaseStudyByID returns nil, nil if no case study has the given ID
	GetCaseStudyByID(ctx context.Context, id string) (*model.CaseStudy, error)
}

// caseStudyRepo is an in-memory CaseStudyRepository. It is never written
// after construction, so concurrent reads need no locking.
type caseStudyRepo struct {
	studies []model.CaseStudy
	byID    map[string]int
}

// NewCaseStudyRepo creates a CaseStudyRepository backed by the embedded seed data
func NewCaseStudyRepo() (CaseStudyRepository, error) {
	var studies []model.CaseStudy
	if err := loadSeed("case_studies.json", &studies); err != nil {
		return nil, err
	}
	return NewCaseStudyRepoFrom(studies)
}

// NewCaseStudyRepoFrom creates a CaseStudyRepository holding the given studies
func NewCaseStudyRepoFrom(studies []model.CaseStudy) (CaseStudyRepository, error) {
	r := &caseStudyRepo{
		studies: make([]model.CaseStudy, 0, len(studies)),
		byID:    make(map[string]int, len(studies)),
	}
	for _, s := range studies {
		if s.ID == "" {
			return nil, fmt.Errorf("case study %q has no id", s.Title)
		}
		if _, exists := r.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate case study id %q", s.ID)
		}
		r.byID[s.ID] = len(r.studies)
		r.studies = append(r.studies, cloneCaseStudy(s))
	}
	return r, nil
}

func (r *caseStudyRepo) ListCaseStudies(ctx context.Context) ([]model.CaseStudy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.CaseStudy, len(r.studies))
	for i, s := range r.studies {
		out[i] = cloneCaseStudy(s)
	}
	return out, nil
}

func (r *caseStudyRepo) GetCaseStudyByID(ctx context.Context, id string) (*model.CaseStudy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	s := cloneCaseStudy(r.studies[idx])
	return &s, nil
}

// cloneCaseStudy copies the attachment slice so callers cannot mutate the store.
func cloneCaseStudy(s model.CaseStudy) model.CaseStudy {
	s.Attachments = slices.Clone(s.Attachments)
	return s
}
