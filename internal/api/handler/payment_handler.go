package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/api/metrics"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for received payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	PatientID int     `json:"patient_id" validate:"required,gt=0"`
	AmountJOD float64 `json:"amount_jod" validate:"required,gt=0"`
	Notes     string  `json:"notes"`
}

// Create handles POST /api/payments (admin and receptionist). The recorder
// is taken from the session, never from the payload.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      200   {object}  domain.Payment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	callerID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Create(c.Request().Context(), ports.CreatePaymentInput{
		PatientID:  req.PatientID,
		AmountJOD:  req.AmountJOD,
		Notes:      req.Notes,
		RecordedBy: callerID,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusOK, payment)
}

// List handles GET /api/payments?patient_id=.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        patient_id  query    int  false  "Filter by patient"
// @Success      200         {array}  domain.Payment
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	patientID := 0
	if raw := c.QueryParam("patient_id"); raw != "" {
		var err error
		patientID, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
	}

	payments, err := h.service.List(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}
