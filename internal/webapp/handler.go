package webapp

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
	"github.com/expertsdental/clinic-system/internal/core/service"
	"github.com/expertsdental/clinic-system/internal/i18n"
)

// shellTemplate is the minimal localized page shell. Page-level forms and
// tables are rendered client-side against the /api surface.
var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<title>{{.Title}} — {{.AppName}}</title>
</head>
<body>
<main data-page="{{.Pattern}}">
<h1>{{.Title}}</h1>
</main>
</body>
</html>
`))

type shellData struct {
	Lang    string
	Dir     string
	Title   string
	AppName string
	Pattern string
}

// Handler serves the web shell: the declarative route table guarded by role
// resolution, the root redirect, and the not-found fallback.
type Handler struct {
	routes    []Route
	bundle    *i18n.Bundle
	revoker   ports.TokenRevoker
	jwtSecret string
	logger    zerolog.Logger
}

func NewHandler(bundle *i18n.Bundle, revoker ports.TokenRevoker, jwtSecret string, logger zerolog.Logger) *Handler {
	return &Handler{
		routes:    Routes(),
		bundle:    bundle,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register mounts every table entry plus the root and not-found handlers.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Root)
	for _, route := range h.routes {
		e.GET(route.Pattern, h.Page)
	}
	e.RouteNotFound("/*", h.NotFound)
}

// Root resolves "/" once per visit: anonymous goes to the login entry,
// authenticated goes straight to their role home.
func (h *Handler) Root(c echo.Context) error {
	if user := h.sessionUser(c); user != nil {
		return c.Redirect(http.StatusFound, RoleHome(user.Role))
	}
	return c.Redirect(http.StatusFound, LoginPath)
}

// Page guards and renders one table entry. The session check is synchronous
// here, so the state handed to the guard is always initialized.
func (h *Handler) Page(c echo.Context) error {
	route, _, ok := Match(h.routes, c.Request().URL.Path)
	if !ok {
		return h.NotFound(c)
	}

	state := AuthState{Initialized: true, User: h.sessionUser(c)}
	decision := Resolve(state, route.Roles)
	switch decision.Kind {
	case DecisionRedirect:
		return c.Redirect(http.StatusFound, decision.Target)
	case DecisionLoading:
		return c.NoContent(http.StatusNoContent)
	}

	return h.render(c, http.StatusOK, route)
}

// NotFound renders the designated not-found target. Unmatched API paths keep
// the JSON error envelope; only page paths get the HTML shell.
func (h *Handler) NotFound(c echo.Context) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return h.render(c, http.StatusNotFound, &Route{Pattern: c.Request().URL.Path, TitleKey: "common.noData"})
}

func (h *Handler) render(c echo.Context, status int, route *Route) error {
	lang := h.language(c)
	data := shellData{
		Lang:    lang,
		Dir:     i18n.Dir(lang),
		Title:   h.bundle.T(lang, route.TitleKey),
		AppName: h.bundle.T(lang, "appName"),
		Pattern: route.Pattern,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return shellTemplate.Execute(c.Response(), data)
}

// sessionUser derives the session user from the cookie token, or nil for an
// anonymous visit. Invalid and revoked tokens are anonymous, never errors.
func (h *Handler) sessionUser(c echo.Context) *domain.User {
	cookie, err := c.Cookie(service.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims, err := service.ParseSessionToken(h.jwtSecret, cookie.Value)
	if err != nil {
		return nil
	}

	if revoked, err := h.revoker.IsRevoked(c.Request().Context(), claims.ID); err != nil || revoked {
		return nil
	}

	return &domain.User{ID: claims.UserID, Username: claims.Username, Role: claims.Role}
}

func (h *Handler) language(c echo.Context) string {
	cookie, err := c.Cookie(i18n.CookieName)
	if err != nil {
		return i18n.DefaultLanguage
	}
	return h.bundle.Normalize(cookie.Value)
}
