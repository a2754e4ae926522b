// Package identity implements signup, signin, token issuance, and
// password changes.
package identity

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/pkg/ctxlog"
	"github.com/taskhive/taskhive/internal/pkg/metrics"
)

// Repository defines the interface for user storage.
type Repository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

// Authenticator issues and verifies signed tokens carrying id, email, and role.
type Authenticator interface {
	IssueToken(ctx context.Context, user *domain.User) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.Principal, error)
}

// Service implements credential business logic.
type Service struct {
	repo   Repository
	hasher PasswordHasher
	auth   Authenticator
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher, auth Authenticator) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		auth:   auth,
	}
}

// SignupInput holds data for registering a user.
type SignupInput struct {
	Email    string
	Password string
	Role     string
}

// SigninInput holds credentials for signing in.
type SigninInput struct {
	Email    string
	Password string
}

// Signup registers a new user and returns it together with a signed token.
// The role name defaults to "user" and must parse into the closed role set.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, string, error) {
	roleName := input.Role
	if roleName == "" {
		roleName = string(domain.RoleUser)
	}
	role, err := domain.ParseRole(roleName)
	if err != nil {
		return nil, "", err
	}

	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:    input.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.auth.IssueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Signin verifies credentials and returns the user with a fresh token.
// ErrUserNotFound and ErrInvalidCredentials are distinct kinds so
// telemetry can tell them apart; the boundary presents them identically.
func (s *Service) Signin(ctx context.Context, input SigninInput) (*domain.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.AuthFailures.WithLabelValues(metrics.AuthFailureUnknownEmail).Inc()
		}
		return nil, "", err
	}

	if !s.hasher.Matches(input.Password, user.Password) {
		metrics.AuthFailures.WithLabelValues(metrics.AuthFailureWrongPassword).Inc()
		ctxlog.FromContext(ctx).Debug("password mismatch on signin", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.IssueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// ChangePassword replaces the stored password hash. Policy validation
// runs before any lookup so malformed input never touches storage.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if err := ValidateNewPassword(newPassword); err != nil {
		return err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if s.hasher.Matches(newPassword, user.Password) {
		return ErrSamePassword
	}

	if !s.hasher.Matches(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hash
	return s.repo.UpdateUser(ctx, user)
}
