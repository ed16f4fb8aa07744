package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// UserHandler handles HTTP requests for staff account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username             string `json:"username" validate:"required,min=3"`
	Password             string `json:"password" validate:"required,min=6"`
	FullName             string `json:"full_name" validate:"required"`
	Role                 string `json:"role" validate:"required,oneof=admin doctor receptionist"`
	SessionDurationHours int    `json:"session_duration_hours" validate:"omitempty,gt=0"`
}

type updateUserRequest struct {
	FullName             *string `json:"full_name"`
	SessionDurationHours *int    `json:"session_duration_hours"`
	Password             *string `json:"password" validate:"omitempty,min=6"`
}

// Create handles POST /api/users (admin only). New accounts start with the
// first-login flag set so the owner must change the seeded password.
//
// @Summary      Create a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username:             req.Username,
		Password:             req.Password,
		FullName:             req.FullName,
		Role:                 domain.Role(req.Role),
		SessionDurationHours: req.SessionDurationHours,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List handles GET /api/users (admin only).
//
// @Summary      List staff accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PUT /api/users/:id (admin only).
//
// @Summary      Update a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		FullName:             req.FullName,
		SessionDurationHours: req.SessionDurationHours,
		Password:             req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id (admin only). Admins cannot delete
// their own account.
//
// @Summary      Remove a staff account
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	callerID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, callerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// ListDoctors handles GET /api/doctors. Any authenticated staff member can
// read the doctor roster for scheduling.
//
// @Summary      List doctors
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /doctors [get]
func (h *UserHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}
