package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "portfolio", "portfolio-admin")

	token, err := a.GenerateToken(a.AdminClaims("admin@example.com", time.Now(), time.Hour))
	require.NoError(t, err)

	parsed, err := a.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", sub)
}

func TestJWT_RejectsExpired(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "portfolio", "portfolio-admin")

	token, err := a.GenerateToken(a.AdminClaims("admin@example.com", time.Now().Add(-2*time.Hour), time.Hour))
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_RejectsWrongAudienceAndSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("s3cret", "portfolio", "other-app")
	token, err := issuer.GenerateToken(issuer.AdminClaims("admin@example.com", time.Now(), time.Hour))
	require.NoError(t, err)

	_, err = NewJWTAuthenticator("s3cret", "portfolio", "portfolio-admin").ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)

	_, err = NewJWTAuthenticator("otro", "portfolio", "other-app").ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWT_RejectsMissingExpiry(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "portfolio", "portfolio-admin")
	token, err := a.GenerateToken(jwt.RegisteredClaims{
		Subject:  "admin@example.com",
		Issuer:   "portfolio",
		Audience: jwt.ClaimStrings{"portfolio-admin"},
	})
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	require.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	require.NoError(t, CheckPassword(hash, "correct horse"))
	require.ErrorIs(t, CheckPassword(hash, "battery staple"), ErrInvalidCredentials)
	require.ErrorIs(t, CheckPassword("", "correct horse"), ErrInvalidCredentials)
}

func TestJWT_EmptySecretRejectsEverything(t *testing.T) {
	a := NewJWTAuthenticator("", "portfolio", "portfolio-admin")

	// Token firmado a mano con clave vacía y solo iss/aud/exp.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "portfolio",
		Audience:  jwt.ClaimStrings{"portfolio-admin"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(""))
	require.NoError(t, err)

	_, err = a.ValidateToken(forged)
	require.ErrorIs(t, err, errSecretNotConfigured)

	_, err = a.GenerateToken(a.AdminClaims("admin@example.com", time.Now(), time.Hour))
	require.ErrorIs(t, err, errSecretNotConfigured)
}
