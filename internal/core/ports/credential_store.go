package ports

import (
	"context"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

// CredentialStore is one role's collection of login records. Each store is
// keyed on a single identifier field (email or username).
type CredentialStore interface {
	Role() domain.Role
	// FindByIdentifier returns domain.ErrAccountNotFound when no record holds
	// identifier in the store's identifier field.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Account, error)
	// Create persists a new account. A unique-index violation is reported as
	// domain.ErrAccountExists.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// PasswordHasher is a slow, salted, one-way password hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
