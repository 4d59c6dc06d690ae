package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

// ctxPrincipal extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user id
// and role prove the middleware ran and the token carried both claims.
func ctxPrincipal(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roleStr, _ := c.Get("role").(string)
	if roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing role claim")
	}

	return userID, domain.Role(roleStr), nil
}
