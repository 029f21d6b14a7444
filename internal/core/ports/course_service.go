package ports

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// CourseService exposes the read-only course catalog.
type CourseService interface {
	List(ctx context.Context) ([]*domain.Course, error)
	Get(ctx context.Context, code string) (*domain.Course, error)
}
