package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

type stubSessionStore struct {
	byUser  map[string]*domain.User
	saves   int
	deletes int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{byUser: make(map[string]*domain.User)}
}

func (s *stubSessionStore) Save(_ context.Context, u *domain.User, _ time.Duration) error {
	clone := *u
	s.byUser[u.ID] = &clone
	s.saves++
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, userID string) (*domain.User, error) {
	u, ok := s.byUser[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, userID string) error {
	delete(s.byUser, userID)
	s.deletes++
	return nil
}

func newAuthService(users *stubUserRepo, sessions *stubSessionStore) *AuthService {
	return NewAuthService(users, sessions, ".edu", "test-secret", time.Hour, discardLogger)
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
		StudentID: "STU001",
	}
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_RejectsNonInstitutionalEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	_, err := svc.Register(context.Background(), registerInput("student@gmail.com"))
	if !errors.Is(err, domain.ErrInvalidEmailDomain) {
		t.Fatalf("expected ErrInvalidEmailDomain, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(users, sessions)

	result, err := svc.Register(context.Background(), registerInput("student@school.edu"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if result.User.ID == "" {
		t.Error("a fresh identifier must be assigned")
	}
	if result.User.EnrolledCourses == nil || len(result.User.EnrolledCourses) != 0 {
		t.Errorf("enrolled courses must default to empty, got %v", result.User.EnrolledCourses)
	}
	if result.Token == "" {
		t.Error("a signed token must be returned")
	}
	if result.User.PasswordHash == "password123" {
		t.Error("password must be hashed, not stored in clear")
	}
	if sessions.saves != 1 {
		t.Errorf("session must be persisted on registration, saves=%d", sessions.saves)
	}
}

func TestAuthService_Register_DeduplicatesEnrolledCourses(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	input := registerInput("student@school.edu")
	input.EnrolledCourses = []string{"CS101", "CS101", "BIO101", "CS101"}

	result, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	want := []string{"CS101", "BIO101"}
	got := result.User.EnrolledCourses
	if len(got) != len(want) {
		t.Fatalf("expected enrolled courses %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected enrolled courses %v, got %v", want, got)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users, newStubSessionStore())

	if _, err := svc.Register(context.Background(), registerInput("student@school.edu")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), registerInput("student@school.edu"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "", Password: "x"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@school.edu", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(users, sessions)

	if _, err := svc.Register(context.Background(), registerInput("student@school.edu")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "student@school.edu", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" || result.User == nil {
		t.Fatal("login must return token and user")
	}
	if sessions.saves != 2 { // register + login
		t.Errorf("session must be re-persisted on login, saves=%d", sessions.saves)
	}
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	if _, err := svc.Register(context.Background(), registerInput("  Student@School.edu ")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), " STUDENT@school.edu\t", "password123")
	if err != nil {
		t.Fatalf("login with unnormalized email failed: %v", err)
	}
	if result.User.Email != "student@school.edu" {
		t.Errorf("expected normalized email, got %q", result.User.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())
	if _, err := svc.Register(context.Background(), registerInput("student@school.edu")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "student@school.edu", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	// Unknown account and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), "nobody@school.edu", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Session lifecycle tests
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RemovesSession(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newAuthService(newStubUserRepo(), sessions)

	result, err := svc.Register(context.Background(), registerInput("student@school.edu"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.User.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := sessions.byUser[result.User.ID]; ok {
		t.Error("session entry must be removed on logout")
	}
}

func TestAuthService_CurrentUser_FallsBackToStore(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(users, sessions)

	result, err := svc.Register(context.Background(), registerInput("student@school.edu"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Simulate a session store restart.
	delete(sessions.byUser, result.User.ID)

	user, err := svc.CurrentUser(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if user.Email != "student@school.edu" {
		t.Errorf("unexpected user: %+v", user)
	}
	if _, ok := sessions.byUser[result.User.ID]; !ok {
		t.Error("session must be re-persisted after fallback")
	}
}

// ---------------------------------------------------------------------------
// Profile update tests
// ---------------------------------------------------------------------------

func TestAuthService_UpdateProfile_ReplacesRecordAndSession(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthService(users, sessions)

	result, err := svc.Register(context.Background(), registerInput("student@school.edu"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), result.User.ID, ports.ProfileInput{
		FirstName:       "Jane",
		LastName:        "Smith",
		StudentID:       "STU002",
		AcademicProgram: "Biology",
		Department:      "Sciences",
		YearLevel:       "Senior",
		EnrolledCourses: []string{"BIO101", "CS101", "BIO101"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.FirstName != "Jane" || updated.Department != "Sciences" {
		t.Errorf("profile not replaced: %+v", updated)
	}
	if len(updated.EnrolledCourses) != 2 {
		t.Errorf("enrolled courses must be deduplicated, got %v", updated.EnrolledCourses)
	}

	session := sessions.byUser[result.User.ID]
	if session == nil || session.FirstName != "Jane" {
		t.Error("session copy must be refreshed after a profile update")
	}
}

func TestAuthService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubSessionStore())

	_, err := svc.UpdateProfile(context.Background(), "ghost", ports.ProfileInput{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
