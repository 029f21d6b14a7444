package ports

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the stored record wholesale (profile edits replace the
	// entire user, not individual fields).
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
