package service

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

type courseService struct {
	courses ports.CourseRepository
}

// NewCourseService returns a CourseService over the seeded catalog.
func NewCourseService(courses ports.CourseRepository) ports.CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.All(ctx)
}

func (s *courseService) Get(ctx context.Context, code string) (*domain.Course, error) {
	return s.courses.FindByCode(ctx, code)
}
