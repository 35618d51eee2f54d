// Package token issues and validates the signed access tokens that
// carry a user identity between requests. Tokens are self-contained:
// validity is purely a function of signature and expiry, so there is no
// server-side token store and no revocation before natural expiry.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"accounts-api/internal/domain"
)

// DefaultTTL is the token lifetime used when the caller does not
// override it and no TTL was configured.
const DefaultTTL = 15 * time.Minute

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Service mints and decodes signed bearer tokens. The signing key and
// algorithm are fixed at construction and never change afterwards.
type Service struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// NewService builds a token service for the given HMAC algorithm name
// (HS256, HS384 or HS512). An empty secret or unknown algorithm is a
// configuration error.
func NewService(secret, algorithm string, defaultTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret is required")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Service{
		secret:     []byte(secret),
		method:     method,
		defaultTTL: defaultTTL,
	}, nil
}

// Issue produces a compact signed token whose subject is the stringified
// user id and whose expiry is now + ttl. With no ttl argument the
// configured default applies.
func (s *Service) Issue(subject int64, ttl ...time.Duration) (string, error) {
	d := s.defaultTTL
	if len(ttl) > 0 {
		d = ttl[0]
	}

	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", subject),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(d)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode validates signature and expiry and returns the subject claim.
// Every failure mode collapses to domain.ErrInvalidToken so callers
// cannot leak which check rejected the token.
func (s *Service) Decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}
