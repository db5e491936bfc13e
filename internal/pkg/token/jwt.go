// Package token issues and verifies the signed bearer tokens the HTTP layer
// uses for authentication. Tokens are HS256 JWTs carrying the principal's
// identity, role and country, so request handling never needs an account
// lookup.
package token

import (
	"fmt"
	"time"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for expired, malformed or tampered tokens.
var ErrInvalidToken = errs.NewUnauthorizedError("Invalid or expired token")

// Claims is the JWT payload. Role and country travel as their wire strings.
type Claims struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Country string `json:"country"`
	jwt.RegisteredClaims
}

// Service signs and verifies principal tokens with a shared HMAC secret.
type Service struct {
	secretKey []byte
	expiry    time.Duration
}

// NewService creates a token service. Expiry bounds how long an issued token
// stays accepted.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// Generate issues a signed token for the given principal.
func (s *Service) Generate(principal account.Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   principal.Email,
		Role:    principal.Role.String(),
		Country: principal.Country.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   principal.ID.String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string and reconstructs the principal
// it was issued for.
func (s *Service) Verify(tokenString string) (account.Principal, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return account.Principal{}, ErrInvalidToken
	}

	return claimsToPrincipal(claims)
}

func claimsToPrincipal(claims *Claims) (account.Principal, error) {
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return account.Principal{}, ErrInvalidToken
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Principal{}, ErrInvalidToken
	}

	country, err := kernel.CountryFromString(claims.Country)
	if err != nil {
		return account.Principal{}, ErrInvalidToken
	}

	if claims.Email == "" {
		return account.Principal{}, ErrInvalidToken
	}

	return account.Principal{
		ID:      id,
		Email:   claims.Email,
		Role:    role,
		Country: country,
	}, nil
}
