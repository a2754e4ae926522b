package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/identity"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Email: "test@example.com",
		Role:  domain.RoleUser,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	// Arrange
	auth := NewAuthenticator(Config{
		SecretKey:     "test-secret",
		TokenDuration: time.Hour,
	})

	// Act
	token, err := auth.IssueToken(context.Background(), testUser())
	require.NoError(t, err)

	principal, err := auth.ValidateToken(context.Background(), token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.ID)
	assert.Equal(t, "test@example.com", principal.Email)
	assert.Equal(t, domain.RoleUser, principal.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	// Arrange
	auth := NewAuthenticator(Config{
		SecretKey:     "test-secret",
		TokenDuration: -time.Minute,
	})

	token, err := auth.IssueToken(context.Background(), testUser())
	require.NoError(t, err)

	// Act
	principal, err := auth.ValidateToken(context.Background(), token)

	// Assert
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	issuer := NewAuthenticator(Config{SecretKey: "secret-a", TokenDuration: time.Hour})
	verifier := NewAuthenticator(Config{SecretKey: "secret-b", TokenDuration: time.Hour})

	token, err := issuer.IssueToken(context.Background(), testUser())
	require.NoError(t, err)

	// Act
	principal, err := verifier.ValidateToken(context.Background(), token)

	// Assert
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	// Arrange
	auth := NewAuthenticator(Config{SecretKey: "test-secret", TokenDuration: time.Hour})

	// Act
	principal, err := auth.ValidateToken(context.Background(), "not.a.token")

	// Assert
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestValidateToken_RejectsUnknownRoleClaim(t *testing.T) {
	// Arrange — token carries a role outside the closed set
	auth := NewAuthenticator(Config{SecretKey: "test-secret", TokenDuration: time.Hour})
	token, err := auth.IssueToken(context.Background(), &domain.User{
		ID:    "user-1",
		Email: "test@example.com",
		Role:  domain.Role("operator"),
	})
	require.NoError(t, err)

	// Act
	principal, err := auth.ValidateToken(context.Background(), token)

	// Assert
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}
