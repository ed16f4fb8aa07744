package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/metrics"
	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment scheduling.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int    `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Status          string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes           string `json:"notes"`
}

type updateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	DurationMinutes *int    `json:"duration_minutes"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

// Create handles POST /api/appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.AppointmentStatus(req.Status),
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, appointment)
}

// List handles GET /api/appointments?doctor_id=&date=. Doctors always get
// only their own schedule regardless of the doctor_id filter.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Param        doctor_id  query     int     false  "Filter by doctor"
// @Param        date       query     string  false  "Filter by date (YYYY-MM-DD)"
// @Success      200        {array}   domain.Appointment
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	callerID, role, err := callerIdentity(c)
	if err != nil {
		return err
	}

	doctorID := 0
	if raw := c.QueryParam("doctor_id"); raw != "" {
		doctorID, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
		}
	}

	appointments, err := h.service.List(c.Request().Context(), ports.ListAppointmentsInput{
		CallerID:   callerID,
		CallerRole: role,
		DoctorID:   doctorID,
		Date:       c.QueryParam("date"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Update handles PUT /api/appointments/:id.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  map[string]string
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.UpdateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		update.Status = &status
	}

	appointment, err := h.service.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete handles DELETE /api/appointments/:id (admin and receptionist).
//
// @Summary      Cancel and remove an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Appointment deleted successfully"})
}
