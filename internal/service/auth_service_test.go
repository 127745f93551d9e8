package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

func newAuthService(issuer string) *AuthService {
	return NewAuthService(nil, nil, AuthConfig{Secret: "test-secret", Issuer: issuer, Expiry: time.Hour})
}

func TestAuthServiceIssueAndValidate(t *testing.T) {
	svc := newAuthService("hr-disciplinary-api")

	token, expiresAt, err := svc.IssueToken(models.IssueTokenRequest{
		UserID:     "user-1",
		EmployeeID: "emp-1",
		Role:       models.RoleHROfficer,
		Email:      "officer@example.com",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, models.RoleHROfficer, claims.Role)
}

func TestAuthServiceRejectsWrongIssuer(t *testing.T) {
	token, _, err := newAuthService("someone-else").IssueToken(models.IssueTokenRequest{UserID: "user-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = newAuthService("hr-disciplinary-api").ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceRejectsOtherAlgorithms(t *testing.T) {
	svc := newAuthService("")
	claims := &models.JWTClaims{UserID: "user-1", Role: models.RoleAdmin}

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(hs384)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceRejectsUnknownRole(t *testing.T) {
	svc := newAuthService("")
	claims := &models.JWTClaims{UserID: "user-1", Role: "JANITOR"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceIssueValidatesRequest(t *testing.T) {
	_, _, err := newAuthService("").IssueToken(models.IssueTokenRequest{UserID: "user-1", Role: "JANITOR"})
	assert.True(t, appErrors.IsValidation(err))
}
