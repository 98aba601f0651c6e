package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextAccountID = "account_id"
	ContextRole      = "role"
	ContextTokenID   = "token_id"
)

// SessionToken returns the session token from the named cookie, falling
// back to an "Authorization: Bearer" header. It returns "" when neither is
// present or the header is malformed.
func SessionToken(c echo.Context, cookieName string) string {
	if tok := cookieToken(c, cookieName); tok != "" {
		return tok
	}
	return bearerToken(c)
}

func cookieToken(c echo.Context, cookieName string) string {
	if ck, err := c.Cookie(cookieName); err == nil {
		return ck.Value
	}
	return ""
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth validates the session token and injects its claims into context.
// A cookie token that fails to parse gives way to a bearer token. Tokens
// revoked at logout are rejected. revoker may be nil.
func Auth(sessions ports.SessionIssuer, revoker ports.TokenRevoker, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, bearer := cookieToken(c, cookieName), bearerToken(c)
			if cookie == "" && bearer == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			var (
				sess *ports.Session
				err  error
			)
			if cookie != "" {
				sess, err = sessions.Parse(cookie)
			}
			if sess == nil && bearer != "" && bearer != cookie {
				sess, err = sessions.Parse(bearer)
			}
			if err != nil || sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), sess.TokenID)
				if err != nil {
					return fmt.Errorf("auth: %w", err)
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "session has been revoked")
				}
			}

			c.Set(ContextAccountID, sess.AccountID)
			c.Set(ContextRole, sess.Role)
			c.Set(ContextTokenID, sess.TokenID)

			return next(c)
		}
	}
}
