package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// Variant pairs a credential store with the hashing scheme its passwords
// were written with.
type Variant struct {
	Store  ports.CredentialStore
	Hasher ports.PasswordHasher
}

// Resolution is the outcome of resolving an identifier to an account.
type Resolution struct {
	Role    domain.Role
	Account *domain.Account
	Variant Variant
}

// IdentityResolver probes the credential stores in domain.RolePriority
// order and stops at the first one holding the identifier.
type IdentityResolver struct {
	variants []Variant
	byRole   map[domain.Role]Variant
}

// NewIdentityResolver orders variants by domain.RolePriority. Roles with no
// variant are skipped; a variant with an unknown role is an error.
func NewIdentityResolver(variants ...Variant) (*IdentityResolver, error) {
	byRole := make(map[domain.Role]Variant, len(variants))
	for _, v := range variants {
		role := v.Store.Role()
		if !role.Valid() {
			return nil, fmt.Errorf("identity resolver: %w: %q", domain.ErrInvalidRole, role)
		}
		if _, dup := byRole[role]; dup {
			return nil, fmt.Errorf("identity resolver: duplicate store for role %q", role)
		}
		byRole[role] = v
	}

	ordered := make([]Variant, 0, len(byRole))
	for _, role := range domain.RolePriority {
		if v, ok := byRole[role]; ok {
			ordered = append(ordered, v)
		}
	}
	return &IdentityResolver{variants: ordered, byRole: byRole}, nil
}

// Resolve returns the first account, in priority order, whose store holds
// identifier. Email-keyed stores are queried by email and username-keyed
// stores by username, with the same value. domain.ErrAccountNotFound is
// returned when no store matches; store failures propagate unchanged.
func (r *IdentityResolver) Resolve(ctx context.Context, identifier string) (*Resolution, error) {
	for _, v := range r.variants {
		acc, err := v.Store.FindByIdentifier(ctx, identifier)
		if errors.Is(err, domain.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve identifier in %s store: %w", v.Store.Role(), err)
		}
		return &Resolution{Role: v.Store.Role(), Account: acc, Variant: v}, nil
	}
	return nil, domain.ErrAccountNotFound
}

// Variant returns the store/hasher pair registered for role.
func (r *IdentityResolver) Variant(role domain.Role) (Variant, bool) {
	v, ok := r.byRole[role]
	return v, ok
}

// taken probes the stores keyed on kind, in priority order, short-circuiting
// on the first hit.
func (r *IdentityResolver) taken(ctx context.Context, kind domain.IdentifierKind, identifier string) (bool, error) {
	for _, v := range r.variants {
		if v.Store.Role().Identifier() != kind {
			continue
		}
		_, err := v.Store.FindByIdentifier(ctx, identifier)
		if errors.Is(err, domain.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("check %s in %s store: %w", kind, v.Store.Role(), err)
		}
		return true, nil
	}
	return false, nil
}

// UniquenessGuard rejects signups whose identifier already exists in any
// store sharing the same namespace.
type UniquenessGuard struct {
	resolver *IdentityResolver
}

func NewUniquenessGuard(resolver *IdentityResolver) *UniquenessGuard {
	return &UniquenessGuard{resolver: resolver}
}

// EmailTaken probes the tourist, tour-guide, advertiser and seller stores.
func (g *UniquenessGuard) EmailTaken(ctx context.Context, email string) (bool, error) {
	return g.resolver.taken(ctx, domain.IdentifierEmail, email)
}

// UsernameTaken probes the admin and tourism-governor stores.
func (g *UniquenessGuard) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return g.resolver.taken(ctx, domain.IdentifierUsername, username)
}
