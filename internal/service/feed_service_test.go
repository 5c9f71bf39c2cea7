package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/repository"
)

func newTestFeedService(t *testing.T) FeedService {
	t.Helper()
	repo, err := repository.NewFeedCaseRepoFrom([]model.FeedCase{
		{ID: "a", Specialty: "Cardiology"},
		{ID: "b", Specialty: "Neurology"},
		{ID: "c", Specialty: "cardiology"},
	})
	if err != nil {
		t.Fatalf("failed to build repo: %v", err)
	}
	return NewFeedService(repo)
}

func TestListFeedCases(t *testing.T) {
	svc := newTestFeedService(t)

	tests := []struct {
		name   string
		filter model.FeedCaseFilter
		want   []string
	}{
		{name: "all in seed order", want: []string{"a", "b", "c"}},
		{name: "specialty ignores case", filter: model.FeedCaseFilter{Specialty: "CARDIOLOGY"}, want: []string{"a", "c"}},
		{name: "unknown specialty", filter: model.FeedCaseFilter{Specialty: "Dermatology"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListFeedCases(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("ListFeedCases returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d cases, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %q, got %q", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestGetFeedCase(t *testing.T) {
	svc := newTestFeedService(t)

	c, err := svc.GetFeedCase(context.Background(), "b")
	if err != nil || c.ID != "b" {
		t.Fatalf("expected case b, got %+v, %v", c, err)
	}
	if _, err := svc.GetFeedCase(context.Background(), "zzz"); !errors.Is(err, ErrFeedCaseNotFound) {
		t.Fatalf("expected ErrFeedCaseNotFound, got %v", err)
	}
}
