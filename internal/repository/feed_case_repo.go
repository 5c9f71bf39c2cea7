package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Charugundlavipul/medilink/internal/model"
)

// FeedCaseRepository defines read access to the shared case feed
type FeedCaseRepository interface {
	// ListFeedCases returns every feed case in seed order
	ListFeedCases(ctx context.Context) ([]model.FeedCase, error)
	// GetFeedCaseByID returns nil, nil if no feed case has the given ID
	GetFeedCaseByID(ctx context.Context, id string) (*model.FeedCase, error)
}

type feedCaseRepo struct {
	cases []model.FeedCase
	byID  map[string]int
}

// NewFeedCaseRepo creates a FeedCaseRepository backed by the embedded seed data
func NewFeedCaseRepo() (FeedCaseRepository, error) {
	var cases []model.FeedCase
	if err := loadSeed("feed_cases.json", &cases); err != nil {
		return nil, err
	}
	return NewFeedCaseRepoFrom(cases)
}

// NewFeedCaseRepoFrom creates a FeedCaseRepository holding the given cases
func NewFeedCaseRepoFrom(cases []model.FeedCase) (FeedCaseRepository, error) {
	r := &feedCaseRepo{
		cases: make([]model.FeedCase, 0, len(cases)),
		byID:  make(map[string]int, len(cases)),
	}
	for _, c := range cases {
		if c.ID == "" {
			return nil, fmt.Errorf("feed case %q has no id", c.Title)
		}
		if _, exists := r.byID[c.ID]; exists {
			return nil, fmt.Errorf("duplicate feed case id %q", c.ID)
		}
		r.byID[c.ID] = len(r.cases)
		r.cases = append(r.cases, cloneFeedCase(c))
	}
	return r, nil
}

func (r *feedCaseRepo) ListFeedCases(ctx context.Context) ([]model.FeedCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.FeedCase, len(r.cases))
	for i, c := range r.cases {
		out[i] = cloneFeedCase(c)
	}
	return out, nil
}

func (r *feedCaseRepo) GetFeedCaseByID(ctx context.Context, id string) (*model.FeedCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	c := cloneFeedCase(r.cases[idx])
	return &c, nil
}

func cloneFeedCase(c model.FeedCase) model.FeedCase {
	c.Symptoms = slices.Clone(c.Symptoms)
	c.Treatments = slices.Clone(c.Treatments)
	c.Attachments = slices.Clone(c.Attachments)
	c.Comments = slices.Clone(c.Comments)
	return c
}
