package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/i18n"
)

// I18nHandler serves translation tables and persists the language choice.
type I18nHandler struct {
	bundle *i18n.Bundle
}

func NewI18nHandler(bundle *i18n.Bundle) *I18nHandler {
	return &I18nHandler{bundle: bundle}
}

type languageResponse struct {
	Language string         `json:"language"`
	Dir      string         `json:"dir"`
	Table    map[string]any `json:"table,omitempty"`
}

type setLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// Table handles GET /api/i18n/:lang. Unknown codes fall back to the default
// language rather than erroring.
//
// @Summary      Fetch a translation table
// @Tags         i18n
// @Produce      json
// @Param        lang  path      string  true  "Language code (en or ar)"
// @Success      200   {object}  languageResponse
// @Router       /i18n/{lang} [get]
func (h *I18nHandler) Table(c echo.Context) error {
	lang := h.bundle.Normalize(c.Param("lang"))
	return c.JSON(http.StatusOK, languageResponse{
		Language: lang,
		Dir:      i18n.Dir(lang),
		Table:    h.bundle.Table(lang),
	})
}

// SetLanguage handles POST /api/i18n/language and stores the choice in a
// cookie so the web shell renders in the right direction on the next load.
//
// @Summary      Persist the interface language
// @Tags         i18n
// @Accept       json
// @Produce      json
// @Param        body  body      setLanguageRequest  true  "Language code"
// @Success      200   {object}  languageResponse
// @Failure      400   {object}  map[string]string
// @Router       /i18n/language [post]
func (h *I18nHandler) SetLanguage(c echo.Context) error {
	var req setLanguageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lang := h.bundle.Normalize(req.Language)
	c.SetCookie(&http.Cookie{
		Name:     i18n.CookieName,
		Value:    lang,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, languageResponse{Language: lang, Dir: i18n.Dir(lang)})
}
