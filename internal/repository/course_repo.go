package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Charugundlavipul/medilink/internal/model"
)

// CourseRepository defines the interface for reading course data
type CourseRepository interface {
	// ListCourses retrieves all courses in catalog order
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID, or nil, nil if it does not exist
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
}

type courseRepo struct {
	courses []model.Course
	byID    map[string]int
}

// NewCourseRepo creates a CourseRepository backed by the embedded seed data
func NewCourseRepo() (CourseRepository, error) {
	var courses []model.Course
	if err := loadSeed("courses.json", &courses); err != nil {
		return nil, err
	}
	return NewCourseRepoFrom(courses)
}

// NewCourseRepoFrom creates a CourseRepository holding the given courses
func NewCourseRepoFrom(courses []model.Course) (CourseRepository, error) {
	r := &courseRepo{
		courses: slices.Clone(courses),
		byID:    make(map[string]int, len(courses)),
	}
	for i, c := range r.courses {
		if c.ID == "" {
			return nil, fmt.Errorf("course %q has no id", c.Title)
		}
		if _, exists := r.byID[c.ID]; exists {
			return nil, fmt.Errorf("duplicate course id %q", c.ID)
		}
		r.byID[c.ID] = i
	}
	return r, nil
}

// ListCourses retrieves all courses in catalog order
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.courses), nil
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, ok := r.byID[courseID]
	if !ok {
		return nil, nil
	}
	course := r.courses[idx]
	return &course, nil
}
