package ports

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// SortKey selects the ordering applied to browse results.
type SortKey string

const (
	SortByDate      SortKey = "date"      // upload timestamp, most recent first
	SortByDownloads SortKey = "downloads" // download counter, descending
	SortByName      SortKey = "name"      // display name, locale-aware ascending
)

// BrowseInput carries all query parameters for browsing files.
// The requesting user is always enforced by the visibility predicate; the
// remaining fields are optional constraints that compose conjunctively.
type BrowseInput struct {
	UserID       string
	Search       string  // substring match on name, tags, description
	CourseCode   string  // exact match
	ResourceType string  // exact match against the coded enumeration
	UploadedBy   string  // exact match on uploader id
	Sort         SortKey // defaults to SortByDate when empty
}

// GetFileInput identifies a single file lookup on behalf of a user.
type GetFileInput struct {
	FileID string
	UserID string
}

// UploadDescriptor is the native file descriptor supplied by the upload
// collaborator: name, byte size, and content type.
type UploadDescriptor struct {
	Name        string
	Size        int64
	ContentType string
}

// UploadInput carries everything needed to ingest one shared file.
type UploadInput struct {
	Descriptor   UploadDescriptor
	UploaderID   string
	CourseCode   string
	ResourceType domain.ResourceType
	Visibility   domain.Visibility
	Tags         []string
	Description  string
}

// DownloadCommand asks the record store's owner to bump a file's counter.
// Presentation code never applies the mutation itself; it dispatches this.
type DownloadCommand struct {
	FileID string
}

// FileService defines use-case operations over the shared-file collection.
type FileService interface {
	// Browse filters the full collection by visibility and query constraints
	// in a single pass, then sorts. Pure given an unchanged record store.
	Browse(ctx context.Context, input BrowseInput) ([]*domain.FileItem, error)
	Get(ctx context.Context, input GetFileInput) (*domain.FileItem, error)
	Upload(ctx context.Context, input UploadInput) (*domain.FileItem, error)
	// RecordDownload increments the file's download counter by exactly 1 and
	// returns the new value. No visibility re-check happens here; enforcement
	// is at offer time, not action time.
	RecordDownload(ctx context.Context, fileID string) (int64, error)
}
