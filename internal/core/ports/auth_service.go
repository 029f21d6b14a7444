package ports

import (
	"context"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

// RegisterInput carries the profile fields supplied at registration.
type RegisterInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	StudentID       string
	AcademicProgram string
	Department      string
	YearLevel       string
	ContactInfo     string
	EnrolledCourses []string
}

// ProfileInput is the whole-record replacement applied by a profile edit.
// Email and enrolled courses are part of the record and replaced with it.
type ProfileInput struct {
	FirstName       string
	LastName        string
	StudentID       string
	ProfilePhoto    string
	AcademicProgram string
	Department      string
	YearLevel       string
	ContactInfo     string
	EnrolledCourses []string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration, login, logout, and profile upkeep.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileInput) (*domain.User, error)
}
