package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// ProcedureHandler handles HTTP requests for the clinic price list.
type ProcedureHandler struct {
	service ports.ProcedureService
}

func NewProcedureHandler(service ports.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{service: service}
}

type createProcedureRequest struct {
	Name        string  `json:"name" validate:"required"`
	PriceJOD    float64 `json:"price_jod" validate:"required,gte=0"`
	Description string  `json:"description"`
}

type updateProcedureRequest struct {
	Name        *string  `json:"name"`
	PriceJOD    *float64 `json:"price_jod"`
	Description *string  `json:"description"`
}

// Create handles POST /api/procedures (admin only).
//
// @Summary      Add a price-list entry
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        body  body      createProcedureRequest  true  "Procedure details"
// @Success      200   {object}  domain.Procedure
// @Failure      400   {object}  map[string]string
// @Router       /procedures [post]
func (h *ProcedureHandler) Create(c echo.Context) error {
	var req createProcedureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	procedure, err := h.service.Create(c.Request().Context(), ports.CreateProcedureInput{
		Name:        req.Name,
		PriceJOD:    req.PriceJOD,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, procedure)
}

// List handles GET /api/procedures.
//
// @Summary      List the price list
// @Tags         procedures
// @Produce      json
// @Success      200  {array}  domain.Procedure
// @Router       /procedures [get]
func (h *ProcedureHandler) List(c echo.Context) error {
	procedures, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, procedures)
}

// Update handles PUT /api/procedures/:id (admin only).
//
// @Summary      Update a price-list entry
// @Tags         procedures
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Procedure id"
// @Param        body  body      updateProcedureRequest  true  "Fields to change"
// @Success      200   {object}  domain.Procedure
// @Failure      404   {object}  map[string]string
// @Router       /procedures/{id} [put]
func (h *ProcedureHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProcedureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	procedure, err := h.service.Update(c.Request().Context(), id, ports.UpdateProcedureInput{
		Name:        req.Name,
		PriceJOD:    req.PriceJOD,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, procedure)
}

// Delete handles DELETE /api/procedures/:id (admin only).
//
// @Summary      Remove a price-list entry
// @Tags         procedures
// @Produce      json
// @Param        id   path      int  true  "Procedure id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /procedures/{id} [delete]
func (h *ProcedureHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Procedure deleted successfully"})
}
