package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/core/ports"
	"github.com/expertsdental/clinic-system/internal/core/service"
)

// Context keys populated by Session for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

// Session validates the session cookie token and injects the caller's
// identity into the request context. Revoked tokens are treated exactly
// like missing ones.
func Session(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(service.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			claims, err := service.ParseSessionToken(jwtSecret, cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil || revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxTokenJTI, claims.ID)
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)

			return next(c)
		}
	}
}
