package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

const defaultSessionTTL = 72 * time.Hour

// sessionClaims is the JWT body: account id and role plus the registered
// expiry, issue time and token id.
type sessionClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTSessionIssuer signs HS256 session tokens with an absolute expiry.
type JWTSessionIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTSessionIssuer(secret string, ttl time.Duration) *JWTSessionIssuer {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &JWTSessionIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of every issued token.
func (s *JWTSessionIssuer) TTL() time.Duration {
	return s.ttl
}

func (s *JWTSessionIssuer) Issue(accountID string, role domain.Role) (string, time.Time, error) {
	if accountID == "" || !role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue session: %w", domain.ErrInvalidRole)
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTSessionIssuer) Parse(token string) (*ports.Session, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims sessionClaims
	tkn, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, errors.Join(domain.ErrUnauthorized, err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, domain.ErrUnauthorized
	}

	return &ports.Session{
		TokenID:   claims.ID,
		AccountID: claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
