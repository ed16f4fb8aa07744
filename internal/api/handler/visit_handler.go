package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/metrics"
	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// VisitHandler handles HTTP requests for treatment visits.
type VisitHandler struct {
	service ports.VisitService
}

func NewVisitHandler(service ports.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

type visitProcedureRequest struct {
	ProcedureID int `json:"procedure_id" validate:"required,gt=0"`
	Quantity    int `json:"quantity" validate:"omitempty,gt=0"`
}

type createVisitRequest struct {
	PatientID  int                     `json:"patient_id" validate:"required,gt=0"`
	DoctorID   int                     `json:"doctor_id" validate:"required,gt=0"`
	Status     string                  `json:"status" validate:"omitempty,oneof=in_progress completed"`
	Notes      string                  `json:"notes"`
	Procedures []visitProcedureRequest `json:"procedures" validate:"dive"`
}

type updateVisitRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Create handles POST /api/visits (doctor and admin). Line items are priced
// from the current price list and frozen on the visit.
//
// @Summary      Record a treatment visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body      createVisitRequest  true  "Visit details"
// @Success      200   {object}  domain.Visit
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /visits [post]
func (h *VisitHandler) Create(c echo.Context) error {
	var req createVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateVisitInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Status:    domain.VisitStatus(req.Status),
		Notes:     req.Notes,
	}
	for _, p := range req.Procedures {
		input.Procedures = append(input.Procedures, ports.VisitProcedureInput{
			ProcedureID: p.ProcedureID,
			Quantity:    p.Quantity,
		})
	}

	visit, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.VisitsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, visit)
}

// List handles GET /api/visits?patient_id=.
//
// @Summary      List visits
// @Tags         visits
// @Produce      json
// @Param        patient_id  query    int  false  "Filter by patient"
// @Success      200         {array}  domain.Visit
// @Router       /visits [get]
func (h *VisitHandler) List(c echo.Context) error {
	patientID := 0
	if raw := c.QueryParam("patient_id"); raw != "" {
		var err error
		patientID, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
	}

	visits, err := h.service.List(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visits)
}

// Update handles PUT /api/visits/:id (doctor and admin). Only status and
// notes can change; billed line items are immutable once recorded.
//
// @Summary      Update a visit
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Visit id"
// @Param        body  body      updateVisitRequest  true  "Fields to change"
// @Success      200   {object}  domain.Visit
// @Failure      404   {object}  map[string]string
// @Router       /visits/{id} [put]
func (h *VisitHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.UpdateVisitInput{Notes: req.Notes}
	if req.Status != nil {
		status := domain.VisitStatus(*req.Status)
		update.Status = &status
	}

	visit, err := h.service.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visit)
}
