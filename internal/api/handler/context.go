package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/tourism-platform/internal/api/middleware"
	"github.com/tripnest/tourism-platform/internal/core/domain"
)

// ctxSession extracts the session claims injected by the Auth middleware
// and fails fast before any service call when they are missing.
func ctxSession(c echo.Context) (accountID string, role domain.Role, err error) {
	role, _ = c.Get(middleware.ContextRole).(domain.Role)
	accountID, _ = c.Get(middleware.ContextAccountID).(string)
	if !role.Valid() || accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, role, nil
}
