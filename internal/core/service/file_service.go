package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

// FileService implements browsing, ingestion, and download recording over the
// shared-file collection.
type FileService struct {
	files ports.FileRepository
	users ports.UserRepository
	cache *FileCache
	log   zerolog.Logger
}

func NewFileService(files ports.FileRepository, users ports.UserRepository, cache *FileCache, log zerolog.Logger) *FileService {
	return &FileService{files: files, users: users, cache: cache, log: log}
}

// Browse runs the query pipeline: a single pass over the full collection
// filtering by the visibility predicate and the query constraints, then a
// stable sort. Identical inputs over an unchanged store yield identical
// output; results are recomputed on every call.
func (s *FileService) Browse(ctx context.Context, input ports.BrowseInput) ([]*domain.FileItem, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	files, err := s.files.All(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.FileItem, 0, len(files))
	for _, f := range files {
		if !f.VisibleTo(user) {
			continue
		}
		if !matchesQuery(f, input) {
			continue
		}
		matched = append(matched, f)
	}

	sortFiles(matched, input.Sort)
	return matched, nil
}

// matchesQuery applies the search term and the optional equality constraints.
// Constraints compose conjunctively; absent constraints impose no restriction.
func matchesQuery(f *domain.FileItem, input ports.BrowseInput) bool {
	if !f.MatchesSearch(input.Search) {
		return false
	}
	if input.CourseCode != "" && f.CourseCode != input.CourseCode {
		return false
	}
	if input.ResourceType != "" && string(f.ResourceType) != input.ResourceType {
		return false
	}
	if input.UploadedBy != "" && f.UploadedBy != input.UploadedBy {
		return false
	}
	return true
}

// sortFiles orders the result set in place. The slice is always freshly
// allocated by Browse, so the record store's canonical order is untouched.
func sortFiles(files []*domain.FileItem, key ports.SortKey) {
	switch key {
	case ports.SortByDownloads:
		slices.SortStableFunc(files, func(a, b *domain.FileItem) int {
			return cmp.Compare(b.DownloadCount, a.DownloadCount)
		})
	case ports.SortByName:
		col := collate.New(language.English)
		slices.SortStableFunc(files, func(a, b *domain.FileItem) int {
			return col.CompareString(a.Name, b.Name)
		})
	default: // SortByDate
		slices.SortStableFunc(files, func(a, b *domain.FileItem) int {
			return b.UploadedAt.Compare(a.UploadedAt)
		})
	}
}

// Get returns a single file, enforcing the visibility predicate. Metadata is
// served through the cache; visibility is evaluated per requesting user on
// every call, cached or not.
func (s *FileService) Get(ctx context.Context, input ports.GetFileInput) (*domain.FileItem, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	file, ok := s.cache.Get(input.FileID)
	if !ok {
		file, err = s.files.FindByID(ctx, input.FileID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(file)
	}

	if !file.VisibleTo(user) {
		return nil, domain.ErrForbidden
	}
	return file, nil
}

// Upload ingests one file descriptor. The identifier, timestamp, and download
// counter are assigned here, never by the caller. Enrollment in the target
// course is re-checked; there is no other failure path.
func (s *FileService) Upload(ctx context.Context, input ports.UploadInput) (*domain.FileItem, error) {
	uploader, err := s.users.FindByID(ctx, input.UploaderID)
	if err != nil {
		return nil, err
	}
	if !uploader.EnrolledIn(input.CourseCode) {
		return nil, domain.ErrNotEnrolled
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	file := &domain.FileItem{
		ID:            uuid.NewString(),
		Name:          input.Descriptor.Name,
		Size:          input.Descriptor.Size,
		ContentType:   input.Descriptor.ContentType,
		UploadedBy:    input.UploaderID,
		UploadedAt:    time.Now().UTC(),
		CourseCode:    input.CourseCode,
		ResourceType:  input.ResourceType,
		Visibility:    input.Visibility,
		DownloadCount: 0,
		Tags:          tags,
		Description:   input.Description,
	}

	if err := s.files.Insert(ctx, file); err != nil {
		s.log.Error().Err(err).Str("name", file.Name).Msg("failed to ingest file")
		return nil, err
	}

	s.log.Info().
		Str("file_id", file.ID).
		Str("course_code", file.CourseCode).
		Str("uploaded_by", file.UploadedBy).
		Msg("file ingested")

	return file, nil
}

// RecordDownload applies exactly +1 to the file's counter and invalidates the
// cached metadata so every view observes the new count on next read.
func (s *FileService) RecordDownload(ctx context.Context, fileID string) (int64, error) {
	count, err := s.files.IncrementDownloads(ctx, fileID)
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(fileID)

	s.log.Debug().Str("file_id", fileID).Int64("download_count", count).Msg("download recorded")
	return count, nil
}
