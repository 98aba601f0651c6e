package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/tourism-platform/internal/core/domain"
)

func TestJWTSessionIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTSessionIssuer("secret", time.Hour)

	token, exp, err := issuer.Issue("acc-1", domain.RoleSeller)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	sess, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "acc-1", sess.AccountID)
	require.Equal(t, domain.RoleSeller, sess.Role)
	require.NotEmpty(t, sess.TokenID)
	require.Equal(t, exp.Unix(), sess.ExpiresAt.Unix())
}

func TestJWTSessionIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewJWTSessionIssuer("secret", time.Hour)
	a, _, _ := issuer.Issue("acc-1", domain.RoleTourist)
	b, _, _ := issuer.Issue("acc-1", domain.RoleTourist)

	sa, err := issuer.Parse(a)
	require.NoError(t, err)
	sb, err := issuer.Parse(b)
	require.NoError(t, err)
	require.NotEqual(t, sa.TokenID, sb.TokenID)
}

func TestJWTSessionIssuer_Expired(t *testing.T) {
	issuer := NewJWTSessionIssuer("secret", time.Minute)
	issued := time.Now().Add(-2 * time.Minute)
	issuer.now = func() time.Time { return issued }
	token, _, err := issuer.Issue("acc-1", domain.RoleTourist)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTSessionIssuer_WrongSecret(t *testing.T) {
	token, _, err := NewJWTSessionIssuer("secret", time.Hour).Issue("acc-1", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTSessionIssuer("other", time.Hour).Parse(token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTSessionIssuer_RejectsUnknownRoleClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "acc-1",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTSessionIssuer("secret", time.Hour).Parse(token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTSessionIssuer_RejectsMissingExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "acc-1",
		"role": "tourist",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTSessionIssuer("secret", time.Hour).Parse(token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTSessionIssuer_IssueValidatesInput(t *testing.T) {
	issuer := NewJWTSessionIssuer("secret", 0)
	require.Equal(t, defaultSessionTTL, issuer.TTL())

	_, _, err := issuer.Issue("", domain.RoleTourist)
	require.Error(t, err)
	_, _, err = issuer.Issue("acc-1", "pirate")
	require.Error(t, err)
}
