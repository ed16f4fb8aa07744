package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient records.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type createPatientRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
	Notes          string `json:"notes"`
}

type updatePatientRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	DateOfBirth    *string `json:"date_of_birth"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
	Notes          *string `json:"notes"`
}

// Create handles POST /api/patients.
//
// @Summary      Register a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      createPatientRequest  true  "Patient details"
// @Success      200   {object}  domain.Patient
// @Failure      400   {object}  map[string]string
// @Router       /patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.Create(c.Request().Context(), ports.CreatePatientInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		DateOfBirth:    req.DateOfBirth,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// List handles GET /api/patients.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Success      200  {array}  domain.Patient
// @Router       /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Get handles GET /api/patients/:id.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  domain.Patient
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	patient, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Update handles PUT /api/patients/:id.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Patient id"
// @Param        body  body      updatePatientRequest  true  "Fields to change"
// @Success      200   {object}  domain.Patient
// @Failure      404   {object}  map[string]string
// @Router       /patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patient, err := h.service.Update(c.Request().Context(), id, ports.UpdatePatientInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		DateOfBirth:    req.DateOfBirth,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Delete handles DELETE /api/patients/:id (admin only).
//
// @Summary      Delete a patient and dependent records
// @Tags         patients
// @Produce      json
// @Param        id   path      int  true  "Patient id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Patient deleted successfully"})
}

// pathID parses the :id path parameter shared by all entity handlers.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
