package ports

import (
	"context"
	"time"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

// Session is the verified content of a session token.
type Session struct {
	TokenID   string
	AccountID string
	Role      domain.Role
	ExpiresAt time.Time
}

// SessionIssuer mints and verifies stateless session tokens.
type SessionIssuer interface {
	Issue(accountID string, role domain.Role) (token string, expiresAt time.Time, err error)
	// Parse returns domain.ErrUnauthorized for malformed, forged or expired tokens.
	Parse(token string) (*Session, error)
}

// TokenRevoker keeps the logout denylist.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
