// Package memory implements the portal's canonical record store: an
// in-process holder of the user, course, and file collections. It is the
// default storage driver and the exclusive owner of its collections — every
// read hands out defensive copies, so no caller ever retains a mutable
// reference into the store.
package memory

import (
	"context"
	"sync"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// Store holds all three collections behind one lock. Repository views over
// each collection are obtained with Users, Files, and Courses.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	byEmail map[string]string // email -> user id
	courses []*domain.Course
	files   []*domain.FileItem
}

// NewStore returns an empty record store.
func NewStore() *Store {
	return &Store{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

// Users returns the ports.UserRepository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

// Files returns the ports.FileRepository view of the store.
func (s *Store) Files() *FileRepository { return &FileRepository{store: s} }

// Courses returns the ports.CourseRepository view of the store.
func (s *Store) Courses() *CourseRepository { return &CourseRepository{store: s} }

// UserRepository is the user-collection view of a Store.
type UserRepository struct {
	store *Store
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(s.users[id]), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	s.users[user.ID] = cloneUser(user)
	s.byEmail[user.Email] = user.ID
	return cloneUser(user), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(s.byEmail, existing.Email)
	s.users[user.ID] = cloneUser(user)
	s.byEmail[user.Email] = user.ID
	return cloneUser(user), nil
}

// FileRepository is the file-collection view of a Store. The collection is
// append-only except for the download counter.
type FileRepository struct {
	store *Store
}

func (r *FileRepository) Insert(_ context.Context, file *domain.FileItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = append(s.files, cloneFile(file))
	return nil
}

func (r *FileRepository) FindByID(_ context.Context, id string) (*domain.FileItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.files {
		if f.ID == id {
			return cloneFile(f), nil
		}
	}
	return nil, domain.ErrFileNotFound
}

func (r *FileRepository) All(_ context.Context) ([]*domain.FileItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.FileItem, len(s.files))
	for i, f := range s.files {
		out[i] = cloneFile(f)
	}
	return out, nil
}

func (r *FileRepository) IncrementDownloads(_ context.Context, id string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		if f.ID == id {
			f.DownloadCount++
			return f.DownloadCount, nil
		}
	}
	return 0, domain.ErrFileNotFound
}

// CourseRepository is the read-only course-catalog view of a Store.
type CourseRepository struct {
	store *Store
}

func (r *CourseRepository) All(_ context.Context) ([]*domain.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = cloneCourse(c)
	}
	return out, nil
}

func (r *CourseRepository) FindByCode(_ context.Context, code string) (*domain.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.Code == code {
			return cloneCourse(c), nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

// --- clone helpers ---

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.EnrolledCourses = append([]string(nil), u.EnrolledCourses...)
	return &clone
}

func cloneFile(f *domain.FileItem) *domain.FileItem {
	clone := *f
	clone.Tags = append([]string(nil), f.Tags...)
	return &clone
}

func cloneCourse(c *domain.Course) *domain.Course {
	clone := *c
	clone.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
	return &clone
}
