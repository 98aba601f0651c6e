package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// AuthService implements signup, login and logout across the six
// credential stores.
type AuthService struct {
	resolver *IdentityResolver
	guard    *UniquenessGuard
	sessions ports.SessionIssuer
	revoker  ports.TokenRevoker
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	resolver *IdentityResolver,
	sessions ports.SessionIssuer,
	revoker ports.TokenRevoker,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		resolver: resolver,
		guard:    NewUniquenessGuard(resolver),
		sessions: sessions,
		revoker:  revoker,
		log:      log,
		now:      time.Now,
	}
}

// Signup validates and registers a new account. The identifier is checked
// against every store sharing its namespace before the password is hashed.
// Two concurrent signups with the same identifier in different stores are
// not serialised; the per-store unique index only covers a single store.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Account, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	variant, ok := s.resolver.Variant(in.Role)
	if !ok {
		return nil, fmt.Errorf("signup: no store for role %q: %w", in.Role, domain.ErrInvalidRole)
	}

	acc := &domain.Account{Role: in.Role, Profile: in.Profile}
	switch in.Role.Identifier() {
	case domain.IdentifierEmail:
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email == "" {
			return nil, domain.NewValidationError("email", "is required")
		}
		if !strings.Contains(email, "@") {
			return nil, domain.NewValidationError("email", "must be a valid email")
		}
		taken, err := s.guard.EmailTaken(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("signup: %w", err)
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		acc.Email = email
		acc.Username = strings.TrimSpace(in.Username)
	case domain.IdentifierUsername:
		username := strings.TrimSpace(in.Username)
		if username == "" {
			return nil, domain.NewValidationError("username", "is required")
		}
		// Keeps the username namespace disjoint from the email namespace.
		if strings.Contains(username, "@") {
			return nil, domain.NewValidationError("username", "must not contain '@'")
		}
		taken, err := s.guard.UsernameTaken(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("signup: %w", err)
		}
		if taken {
			return nil, domain.ErrUsernameTaken
		}
		acc.Username = username
	}

	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if in.Role == domain.RoleTourist {
		if err := validateTouristProfile(in.Profile); err != nil {
			return nil, err
		}
	}

	hash, err := variant.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}
	now := s.now().UTC()
	acc.PasswordHash = hash
	acc.CreatedAt = now
	acc.UpdatedAt = now

	created, err := variant.Store.Create(ctx, acc)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			if in.Role.Identifier() == domain.IdentifierUsername {
				return nil, domain.ErrUsernameTaken
			}
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info().Str("role", string(created.Role)).Str("account_id", created.ID).Msg("account created")
	return created, nil
}

func validateTouristProfile(p domain.Profile) error {
	switch {
	case strings.TrimSpace(p.MobileNumber) == "":
		return domain.NewValidationError("mobile_number", "is required")
	case strings.TrimSpace(p.Nationality) == "":
		return domain.NewValidationError("nationality", "is required")
	case p.DateOfBirth == nil || p.DateOfBirth.IsZero():
		return domain.NewValidationError("dob", "is required")
	}
	return nil
}

// Login resolves identifier to an account, verifies the password with that
// store's hashing scheme and issues a session. An unknown identifier and a
// wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Emails are stored lower-cased; usernames never contain '@'.
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}

	res, err := s.resolver.Resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.log.Debug().Msg("login rejected: identifier not found")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !res.Variant.Hasher.Verify(res.Account.PasswordHash, password) {
		s.log.Debug().Str("role", string(res.Role)).Msg("login rejected: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.sessions.Issue(res.Account.ID, res.Role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("role", string(res.Role)).Str("account_id", res.Account.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, ExpiresAt: exp, Account: res.Account}, nil
}

// Logout adds the token to the denylist until it expires and reports
// whether it did. Tokens that are already invalid need no revocation.
func (s *AuthService) Logout(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	sess, err := s.sessions.Parse(token)
	if err != nil {
		return false, nil
	}
	if err := s.revoker.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return false, fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("role", string(sess.Role)).Str("account_id", sess.AccountID).Msg("session revoked")
	return true, nil
}
