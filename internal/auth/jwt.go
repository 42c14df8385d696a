// internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errSecretNotConfigured = errors.New("auth: secreto no configurado")

type JWTAuthenticator struct {
	secret string
	iss    string // Issuer (quién emite el token)
	aud    string // Audience (para quién es el token)
}

func NewJWTAuthenticator(secret, iss, aud string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret, iss: iss, aud: aud}
}

// AdminClaims construye los claims de una sesión de administrador.
func (a *JWTAuthenticator) AdminClaims(subject string, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    a.iss,
		Audience:  jwt.ClaimStrings{a.aud},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// GenerateToken crea un nuevo token JWT con los claims dados.
func (a *JWTAuthenticator) GenerateToken(claims jwt.Claims) (string, error) {
	if a.secret == "" {
		return "", errSecretNotConfigured
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secret))
}

// ValidateToken verifica firma, emisor, audiencia y expiración.
func (a *JWTAuthenticator) ValidateToken(tokenString string) (*jwt.Token, error) {
	// Con secreto vacío cualquiera podría firmar un token válido.
	if a.secret == "" {
		return nil, errSecretNotConfigured
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(a.secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.iss),
		jwt.WithAudience(a.aud),
		jwt.WithExpirationRequired(),
	)
}
