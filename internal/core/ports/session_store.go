package ports

import (
	"context"
	"time"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// SessionStore persists the serialized user record for an authenticated
// session. Written on login, registration, and profile update; removed on
// logout. The stored copy is decoupled from the record store's own copy.
type SessionStore interface {
	Save(ctx context.Context, user *domain.User, ttl time.Duration) error
	Load(ctx context.Context, userID string) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
