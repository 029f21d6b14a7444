package ports

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// CourseRepository provides read access to the course catalog. Courses are
// immutable seed data; no write operations exist.
type CourseRepository interface {
	All(ctx context.Context) ([]*domain.Course, error)
	FindByCode(ctx context.Context, code string) (*domain.Course, error)
}
