package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/smartcards/backend/internal/config"
)

// DefaultTokenTTL applies when Issue is called without an explicit
// validity window.
const DefaultTokenTTL = 15 * time.Minute

// ErrInvalidToken covers every verification failure: bad signature, expired,
// malformed, missing expiry. Callers get no detail beyond "invalid".
var ErrInvalidToken = fmt.Errorf("invalid token")

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// key is per-instance, not package state, so tests can run distinct keys
// side by side. Rotating the key invalidates every outstanding token; there
// is no revocation or refresh mechanism.
type TokenService struct {
	secret    []byte
	accessTTL time.Duration
}

func NewTokenService(cfg config.AuthConfig) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.JWTAccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	return &TokenService{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: accessTTL,
	}, nil
}

// AccessTTL is the configured validity window for login-issued tokens.
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// Issue signs a token for subject valid for ttl. A non-positive ttl falls
// back to DefaultTokenTTL.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded subject.
// Any failure returns ErrInvalidToken, never a partial subject.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
