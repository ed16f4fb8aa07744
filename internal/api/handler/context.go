package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/middleware"
	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// callerIdentity extracts the identity injected by the Session middleware
// and fast-fails before any service call: a zero user id or empty role means
// the middleware did not run, which no handler should tolerate silently.
func callerIdentity(c echo.Context) (userID int, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(int)
	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	if userID == 0 || role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return userID, role, nil
}
