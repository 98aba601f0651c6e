package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
	"github.com/tripnest/tourism-platform/internal/core/service"
)

type stubRevoker struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevoker) Revoke(_ context.Context, id string, _ time.Time) error {
	s.revoked[id] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	return s.revoked[id], s.err
}

func newIssuer() *service.JWTSessionIssuer {
	return service.NewJWTSessionIssuer("secret", time.Hour)
}

func runAuth(t *testing.T, req *http.Request, revoker *stubRevoker, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var r ports.TokenRevoker
	if revoker != nil {
		r = revoker
	}
	mw := Auth(newIssuer(), r, "jwt")
	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotCallNext(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	token, _, err := newIssuer().Issue("acc-1", domain.RoleTourGuide)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})

	called := false
	rec := runAuth(t, req, &stubRevoker{revoked: map[string]bool{}}, func(c echo.Context) error {
		called = true
		if c.Get(ContextAccountID) != "acc-1" {
			t.Fatalf("account id not set")
		}
		if c.Get(ContextRole) != domain.RoleTourGuide {
			t.Fatalf("role not set")
		}
		if c.Get(ContextTokenID) == "" {
			t.Fatalf("token id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ValidBearer(t *testing.T) {
	token, _, _ := newIssuer().Issue("acc-2", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := runAuth(t, req, nil, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := runAuth(t, req, nil, mustNotCallNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")

	rec := runAuth(t, req, nil, mustNotCallNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := runAuth(t, req, nil, mustNotCallNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	issuer := newIssuer()
	token, _, _ := issuer.Issue("acc-1", domain.RoleSeller)
	sess, _ := issuer.Parse(token)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})

	rec := runAuth(t, req, &stubRevoker{revoked: map[string]bool{sess.TokenID: true}}, mustNotCallNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RevokerFailure(t *testing.T) {
	token, _, _ := newIssuer().Issue("acc-1", domain.RoleSeller)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	c := e.NewContext(req, httptest.NewRecorder())

	down := errors.New("redis down")
	err := Auth(newIssuer(), &stubRevoker{err: down}, "jwt")(mustNotCallNext(t))(c)
	if !errors.Is(err, down) {
		t.Fatalf("expected revoker error, got %v", err)
	}
}

func TestAuthMiddleware_StaleCookieFallsBackToBearer(t *testing.T) {
	token, _, err := newIssuer().Issue("acc-9", domain.RoleSeller)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "stale.cookie.token"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	called := false
	rec := runAuth(t, req, &stubRevoker{revoked: map[string]bool{}}, func(c echo.Context) error {
		called = true
		if c.Get(ContextAccountID) != "acc-9" {
			t.Fatalf("account id not taken from bearer token")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected bearer token to authenticate, got %d", rec.Code)
	}
}

func TestAuthMiddleware_StaleCookieWithoutBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "stale.cookie.token"})

	rec := runAuth(t, req, nil, mustNotCallNext(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
