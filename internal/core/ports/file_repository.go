package ports

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// FileRepository defines persistence operations for shared-file records.
// The browse pipeline works over All; records are append-only except for the
// download counter.
type FileRepository interface {
	Insert(ctx context.Context, file *domain.FileItem) error
	FindByID(ctx context.Context, id string) (*domain.FileItem, error)
	// All returns a snapshot of every file record. Callers own the returned
	// slice and elements; mutating them must not affect the store.
	All(ctx context.Context) ([]*domain.FileItem, error)
	// IncrementDownloads adds exactly 1 to the file's download counter and
	// returns the new value. The counter never decreases.
	IncrementDownloads(ctx context.Context, id string) (int64, error)
}
