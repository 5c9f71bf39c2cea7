package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/repository"
)

var ErrFeedCaseNotFound = errors.New("feed case not found")

// FeedService defines read operations on the shared case feed
type FeedService interface {
	ListFeedCases(ctx context.Context, filter model.FeedCaseFilter) ([]model.FeedCase, error)
	GetFeedCase(ctx context.Context, id string) (*model.FeedCase, error)
}

type feedService struct {
	repo repository.FeedCaseRepository
}

func NewFeedService(repo repository.FeedCaseRepository) FeedService {
	return &feedService{repo: repo}
}

func (s *feedService) ListFeedCases(ctx context.Context, filter model.FeedCaseFilter) ([]model.FeedCase, error) {
	cases, err := s.repo.ListFeedCases(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.FeedCase, 0, len(cases))
	for _, c := range cases {
		if filter.Specialty != "" && !strings.EqualFold(c.Specialty, filter.Specialty) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// GetFeedCase returns ErrFeedCaseNotFound for unknown IDs
func (s *feedService) GetFeedCase(ctx context.Context, id string) (*model.FeedCase, error) {
	c, err := s.repo.GetFeedCaseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrFeedCaseNotFound
	}
	return c, nil
}
