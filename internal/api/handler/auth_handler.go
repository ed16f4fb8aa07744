package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/metrics"
	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
	"github.com/expertsdental/clinic-system/internal/core/service"
)

// AuthHandler handles the session lifecycle endpoints.
type AuthHandler struct {
	auth          ports.AuthService
	jwtSecret     string
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, jwtSecret string, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User *domain.User `json:"user"`
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates a user and establishes the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(result.Token, result.ExpiresAt))
	return c.JSON(http.StatusOK, loginResponse{User: result.User})
}

// Logout revokes the session token and expires the cookie. The cookie is
// cleared even when revocation fails, so the client never stays logged in
// locally (client/server desync is accepted, matching the product policy).
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(service.SessionCookieName); err == nil && cookie.Value != "" {
		if claims, err := service.ParseSessionToken(h.jwtSecret, cookie.Value); err == nil {
			if err := h.auth.Logout(c.Request().Context(), claims.ID, claims.ExpiresAt.Time); err == nil {
				metrics.SessionsRevokedTotal.Inc()
			}
		}
	}

	c.SetCookie(h.expiredCookie())
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Me returns the current session user, re-derived from storage.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword sets a new password and clears the first-login flag.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "New password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ChangePassword(c.Request().Context(), userID, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password changed successfully"})
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     service.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     service.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
