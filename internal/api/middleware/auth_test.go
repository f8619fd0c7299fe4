package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/auth"
	"github.com/thalibook/thalibook-api/internal/domain"
)

type fakeValidator struct {
	claims *auth.Claims
	err    error
}

func (f *fakeValidator) Validate(string) (*auth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func runAuth(t *testing.T, validator TokenValidator, header string) (*httptest.ResponseRecorder, *auth.Claims, bool) {
	t.Helper()

	var gotClaims *auth.Claims
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, gotOK = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/my", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rec := httptest.NewRecorder()
	Auth(validator, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, gotClaims, gotOK
}

func TestAuth_ValidTokenPassesClaims(t *testing.T) {
	validator := &fakeValidator{claims: &auth.Claims{UserID: 42, Role: string(domain.RoleCustomer)}}

	rec, claims, ok := runAuth(t, validator, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, string(domain.RoleCustomer), claims.Role)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _, ok := runAuth(t, &fakeValidator{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"good-token", "Basic dXNlcjpwYXNz", "Bearer "} {
		rec, _, ok := runAuth(t, &fakeValidator{}, header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, ok)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &fakeValidator{err: auth.ErrInvalidToken}

	rec, _, ok := runAuth(t, validator, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuth_RealTokenManagerRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue(&domain.User{ID: 7, Email: "priya@example.com", Role: domain.RoleManager})
	require.NoError(t, err)

	rec, claims, ok := runAuth(t, tokens, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, string(domain.RoleManager), claims.Role)
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
}
