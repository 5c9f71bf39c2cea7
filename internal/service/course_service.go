package service

import (
	"context"
	"errors"

	"github.com/Charugundlavipul/medilink/internal/model"
	"github.com/Charugundlavipul/medilink/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService defines the interface for course operations
type CourseService interface {
	// ListCourses retrieves the courses matching filter in catalog order
	ListCourses(ctx context.Context, filter model.CourseFilter) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if filter.Difficulty != "" && c.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Certification != nil && c.Certification != *filter.Certification {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	course, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}
