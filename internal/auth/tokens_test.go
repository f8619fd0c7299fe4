package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    42,
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Role:  domain.RoleCustomer,
	}
}

func TestTokenManager_IssueValidateRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, string(domain.RoleCustomer), claims.Role)
	assert.Equal(t, "priya@example.com", claims.Subject)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_EmptyToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = m.Validate("   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Validate("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_UnknownRoleRejected(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(&domain.User{ID: 7, Email: "x@example.com", Role: "SUPERUSER"})
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_SecretTrimmed(t *testing.T) {
	issuer := NewTokenManager("  test-secret \n", time.Hour)
	verifier := NewTokenManager("test-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.NoError(t, err)
}
