package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, err := r.FindByEmail(context.Background(), u.Email); err == nil {
		return nil, domain.ErrUserExists
	}
	clone := *u
	r.byID[u.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byID[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	out := clone
	return &out, nil
}

type stubFileRepo struct {
	files     []*domain.FileItem
	insertErr error
}

func (r *stubFileRepo) Insert(_ context.Context, f *domain.FileItem) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *f
	r.files = append(r.files, &clone)
	return nil
}

func (r *stubFileRepo) FindByID(_ context.Context, id string) (*domain.FileItem, error) {
	for _, f := range r.files {
		if f.ID == id {
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrFileNotFound
}

func (r *stubFileRepo) All(_ context.Context) ([]*domain.FileItem, error) {
	out := make([]*domain.FileItem, len(r.files))
	for i, f := range r.files {
		clone := *f
		out[i] = &clone
	}
	return out, nil
}

func (r *stubFileRepo) IncrementDownloads(_ context.Context, id string) (int64, error) {
	for _, f := range r.files {
		if f.ID == id {
			f.DownloadCount++
			return f.DownloadCount, nil
		}
	}
	return 0, domain.ErrFileNotFound
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func newFileService(repo *stubFileRepo, users *stubUserRepo) *FileService {
	return NewFileService(repo, users, NewFileCache(16, time.Minute), discardLogger)
}

func seedUser(id string, courses ...string) *domain.User {
	return &domain.User{ID: id, Email: id + "@school.edu", EnrolledCourses: courses}
}

func seedFile(id, name string, visibility domain.Visibility, uploadedBy string, downloads int64) *domain.FileItem {
	return &domain.FileItem{
		ID:            id,
		Name:          name,
		Visibility:    visibility,
		CourseCode:    "CS101",
		ResourceType:  domain.ResourceLectureNotes,
		UploadedBy:    uploadedBy,
		UploadedAt:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DownloadCount: downloads,
	}
}

func browseNames(t *testing.T, svc *FileService, input ports.BrowseInput) []string {
	t.Helper()
	files, err := svc.Browse(context.Background(), input)
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

// ---------------------------------------------------------------------------
// Browse tests
// ---------------------------------------------------------------------------

func TestFileService_Browse_VisibilityExcludesForeignPrivate(t *testing.T) {
	// Scenario: public A.pdf and u2's private B.pdf, browsing as u1 with
	// sort=downloads. B must be excluded despite its higher counter.
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "A.pdf", domain.VisibilityPublic, "u2", 5),
		seedFile("f2", "B.pdf", domain.VisibilityPrivate, "u2", 9),
	}}
	users := newStubUserRepo(seedUser("u1"))
	svc := newFileService(repo, users)

	names := browseNames(t, svc, ports.BrowseInput{UserID: "u1", Sort: ports.SortByDownloads})
	if len(names) != 1 || names[0] != "A.pdf" {
		t.Fatalf("expected [A.pdf], got %v", names)
	}
}

func TestFileService_Browse_ResourceTypeFilter(t *testing.T) {
	files := []*domain.FileItem{
		seedFile("f1", "guide1.pdf", domain.VisibilityPublic, "u2", 0),
		seedFile("f2", "guide2.pdf", domain.VisibilityPublic, "u2", 0),
		seedFile("f3", "notes1.pdf", domain.VisibilityPublic, "u2", 0),
		seedFile("f4", "notes2.pdf", domain.VisibilityPublic, "u2", 0),
	}
	files[0].ResourceType = domain.ResourceStudyGuide
	files[1].ResourceType = domain.ResourceStudyGuide
	repo := &stubFileRepo{files: files}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))

	names := browseNames(t, svc, ports.BrowseInput{
		UserID:       "u1",
		ResourceType: string(domain.ResourceStudyGuide),
		Sort:         ports.SortByName,
	})
	if len(names) != 2 || names[0] != "guide1.pdf" || names[1] != "guide2.pdf" {
		t.Fatalf("expected the two study guides, got %v", names)
	}
}

func TestFileService_Browse_SearchMatchesNameTagsDescription(t *testing.T) {
	byName := seedFile("f1", "Calculus_Notes.pdf", domain.VisibilityPublic, "u2", 0)
	byTag := seedFile("f2", "misc.pdf", domain.VisibilityPublic, "u2", 0)
	byTag.Tags = []string{"calculus", "math"}
	byDesc := seedFile("f3", "other.pdf", domain.VisibilityPublic, "u2", 0)
	byDesc.Description = "Intro to calculus"
	noMatch := seedFile("f4", "biology.pdf", domain.VisibilityPublic, "u2", 0)

	repo := &stubFileRepo{files: []*domain.FileItem{byName, byTag, byDesc, noMatch}}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))

	names := browseNames(t, svc, ports.BrowseInput{UserID: "u1", Search: "CALCULUS"})
	if len(names) != 3 {
		t.Fatalf("expected 3 matches, got %v", names)
	}
}

func TestFileService_Browse_ConjunctiveFilters(t *testing.T) {
	a := seedFile("f1", "a.pdf", domain.VisibilityPublic, "u2", 0)
	b := seedFile("f2", "b.pdf", domain.VisibilityPublic, "u3", 0)
	b.CourseCode = "MATH301"
	repo := &stubFileRepo{files: []*domain.FileItem{a, b}}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))

	names := browseNames(t, svc, ports.BrowseInput{
		UserID:     "u1",
		CourseCode: "CS101",
		UploadedBy: "u3",
	})
	if len(names) != 0 {
		t.Fatalf("constraints must AND together, got %v", names)
	}
}

func TestFileService_Browse_SortOrders(t *testing.T) {
	old := seedFile("f1", "zeta.pdf", domain.VisibilityPublic, "u2", 10)
	old.UploadedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mid := seedFile("f2", "alpha.pdf", domain.VisibilityPublic, "u2", 30)
	mid.UploadedAt = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	recent := seedFile("f3", "Beta.pdf", domain.VisibilityPublic, "u2", 20)
	recent.UploadedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	repo := &stubFileRepo{files: []*domain.FileItem{old, mid, recent}}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))
	browse := func(key ports.SortKey) []string {
		return browseNames(t, svc, ports.BrowseInput{UserID: "u1", Sort: key})
	}

	if got := browse(ports.SortByDate); got[0] != "Beta.pdf" || got[2] != "zeta.pdf" {
		t.Errorf("date sort: most recent first, got %v", got)
	}
	if got := browse(ports.SortByDownloads); got[0] != "alpha.pdf" || got[2] != "zeta.pdf" {
		t.Errorf("downloads sort: descending, got %v", got)
	}
	if got := browse(ports.SortByName); got[0] != "alpha.pdf" || got[1] != "Beta.pdf" || got[2] != "zeta.pdf" {
		t.Errorf("name sort: case-insensitive ascending, got %v", got)
	}
}

func TestFileService_Browse_Idempotent(t *testing.T) {
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "a.pdf", domain.VisibilityPublic, "u2", 3),
		seedFile("f2", "b.pdf", domain.VisibilityPublic, "u2", 7),
	}}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))
	input := ports.BrowseInput{UserID: "u1", Sort: ports.SortByDownloads}

	first := browseNames(t, svc, input)
	second := browseNames(t, svc, input)

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("identical inputs produced different order: %v vs %v", first, second)
		}
	}
}

func TestFileService_Browse_UnknownUser(t *testing.T) {
	svc := newFileService(&stubFileRepo{}, newStubUserRepo())

	_, err := svc.Browse(context.Background(), ports.BrowseInput{UserID: "ghost"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Upload tests
// ---------------------------------------------------------------------------

func TestFileService_Upload_AssignsIDTimestampAndZeroCounter(t *testing.T) {
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "existing.pdf", domain.VisibilityPublic, "u2", 4),
	}}
	users := newStubUserRepo(seedUser("u1", "CS101"))
	svc := newFileService(repo, users)

	before := time.Now().UTC()
	created, err := svc.Upload(context.Background(), ports.UploadInput{
		Descriptor:   ports.UploadDescriptor{Name: "new.pdf", Size: 1024, ContentType: "application/pdf"},
		UploaderID:   "u1",
		CourseCode:   "CS101",
		ResourceType: domain.ResourceAssignment,
		Visibility:   domain.VisibilityClassOnly,
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if created.ID == "" {
		t.Error("id must be assigned by the service")
	}
	if created.DownloadCount != 0 {
		t.Errorf("new file must start at 0 downloads, got %d", created.DownloadCount)
	}
	if created.UploadedAt.Before(before) {
		t.Errorf("timestamp %v predates the call at %v", created.UploadedAt, before)
	}

	// Exactly one new record appended; the prior entry is untouched.
	if len(repo.files) != 2 {
		t.Fatalf("expected 2 stored files, got %d", len(repo.files))
	}
	if repo.files[0].Name != "existing.pdf" || repo.files[0].DownloadCount != 4 {
		t.Errorf("prior record mutated: %+v", repo.files[0])
	}
}

func TestFileService_Upload_NotEnrolled(t *testing.T) {
	users := newStubUserRepo(seedUser("u1", "BIO101"))
	svc := newFileService(&stubFileRepo{}, users)

	_, err := svc.Upload(context.Background(), ports.UploadInput{
		Descriptor: ports.UploadDescriptor{Name: "x.pdf"},
		UploaderID: "u1",
		CourseCode: "CS101",
	})
	if !errors.Is(err, domain.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Download recording tests
// ---------------------------------------------------------------------------

func TestFileService_RecordDownload_IncrementsByOne(t *testing.T) {
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "a.pdf", domain.VisibilityPublic, "u2", 41),
	}}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))

	count, err := svc.RecordDownload(context.Background(), "f1")
	if err != nil {
		t.Fatalf("record download failed: %v", err)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
	if repo.files[0].DownloadCount != 42 {
		t.Errorf("store not updated, got %d", repo.files[0].DownloadCount)
	}
}

func TestFileService_RecordDownload_InvalidatesCache(t *testing.T) {
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "a.pdf", domain.VisibilityPublic, "u2", 0),
	}}
	users := newStubUserRepo(seedUser("u1"))
	svc := newFileService(repo, users)

	// Populate the cache, bump the counter, then read again: the stale count
	// must not be served.
	if _, err := svc.Get(context.Background(), ports.GetFileInput{FileID: "f1", UserID: "u1"}); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := svc.RecordDownload(context.Background(), "f1"); err != nil {
		t.Fatalf("record download failed: %v", err)
	}

	file, err := svc.Get(context.Background(), ports.GetFileInput{FileID: "f1", UserID: "u1"})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if file.DownloadCount != 1 {
		t.Errorf("expected fresh count 1 after invalidation, got %d", file.DownloadCount)
	}
}

func TestFileService_RecordDownload_UnknownFile(t *testing.T) {
	svc := newFileService(&stubFileRepo{}, newStubUserRepo())

	_, err := svc.RecordDownload(context.Background(), "missing")
	if !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Get tests
// ---------------------------------------------------------------------------

func TestFileService_Get_ForbiddenForInvisibleFile(t *testing.T) {
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "secret.pdf", domain.VisibilityPrivate, "u2", 0),
	}}
	svc := newFileService(repo, newStubUserRepo(seedUser("u1")))

	_, err := svc.Get(context.Background(), ports.GetFileInput{FileID: "f1", UserID: "u1"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestFileService_Get_VisibilityCheckedOnCacheHit(t *testing.T) {
	repo := &stubFileRepo{files: []*domain.FileItem{
		seedFile("f1", "secret.pdf", domain.VisibilityPrivate, "u2", 0),
	}}
	users := newStubUserRepo(seedUser("u1"), seedUser("u2"))
	svc := newFileService(repo, users)

	// Owner primes the cache; a stranger must still be rejected.
	if _, err := svc.Get(context.Background(), ports.GetFileInput{FileID: "f1", UserID: "u2"}); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	_, err := svc.Get(context.Background(), ports.GetFileInput{FileID: "f1", UserID: "u1"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on cache hit, got %v", err)
	}
}
