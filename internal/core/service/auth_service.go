package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studyshare/campus-portal/internal/core/domain"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

// AuthService implements registration, login, logout, and profile upkeep.
type AuthService struct {
	users       ports.UserRepository
	sessions    ports.SessionStore
	emailSuffix string
	jwtSecret   string
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	emailSuffix string,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if emailSuffix == "" {
		emailSuffix = ".edu"
	}
	return &AuthService{
		users:       users,
		sessions:    sessions,
		emailSuffix: emailSuffix,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

// Register creates a new account. The email must end with the institutional
// domain suffix; violations surface as domain.ErrInvalidEmailDomain, distinct
// from authentication failures.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !strings.HasSuffix(email, s.emailSuffix) {
		return nil, domain.ErrInvalidEmailDomain
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:              uuid.NewString(),
		Email:           email,
		PasswordHash:    string(hash),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		StudentID:       input.StudentID,
		AcademicProgram: input.AcademicProgram,
		Department:      input.Department,
		YearLevel:       input.YearLevel,
		ContactInfo:     input.ContactInfo,
		EnrolledCourses: dedupeCourses(input.EnrolledCourses),
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, created, s.tokenTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", created.ID).Msg("failed to persist session")
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// both resolve to domain.ErrInvalidCredentials so callers cannot probe which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.sessions.Save(ctx, user, s.tokenTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist session")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, User: user}, nil
}

// Logout removes the persisted session entry.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// CurrentUser returns the session copy of the user, falling back to the
// record store when no session entry exists (token still valid after a
// session store restart).
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if user, err := s.sessions.Load(ctx, userID); err == nil {
		return user, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, user, s.tokenTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to refresh session")
	}
	return user, nil
}

// UpdateProfile replaces the stored user record with the supplied fields and
// re-persists the session copy so both stay aligned.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ports.ProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses := input.EnrolledCourses
	if courses == nil {
		courses = []string{}
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.StudentID = input.StudentID
	user.ProfilePhoto = input.ProfilePhoto
	user.AcademicProgram = input.AcademicProgram
	user.Department = input.Department
	user.YearLevel = input.YearLevel
	user.ContactInfo = input.ContactInfo
	user.EnrolledCourses = dedupeCourses(courses)

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, updated, s.tokenTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to refresh session")
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// dedupeCourses keeps the first occurrence of each course code; the enrolled
// set must have no duplicates.
func dedupeCourses(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
