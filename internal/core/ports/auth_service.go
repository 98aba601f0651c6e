package ports

import (
	"context"
	"time"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

// SignupInput carries everything needed to register an account of Role.
type SignupInput struct {
	Role     domain.Role
	Email    string
	Username string
	Password string
	Profile  domain.Profile
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.Account, error)
	// Login accepts an email or a username without knowing which.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	// Logout reports whether a live session was revoked.
	Logout(ctx context.Context, token string) (bool, error)
}
