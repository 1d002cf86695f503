package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medvisa/internal/errors"
	"medvisa/internal/middleware"
	"medvisa/internal/model"
	"medvisa/internal/service"
)

// UserHandler handles applicant profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// AppointmentRequest completes the appointment form.
type AppointmentRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PassportNumber string `json:"passport_number" validate:"required"`
	Country        string `json:"country" validate:"required"`
	City           string `json:"city" validate:"required"`
	PreferredDate  string `json:"preferred_date" validate:"required"`
	VisaType       string `json:"visa_type" validate:"required"`
	Notes          string `json:"notes"`
}

// Me godoc
// @Summary Current applicant profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, errors.ErrInvalidToken)
	}
	return respondOK(c, http.StatusOK, "", user)
}

// UpdateAppointment godoc
// @Summary Complete or update the appointment form
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AppointmentRequest true "Appointment details"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /me/appointment [put]
func (h *UserHandler) UpdateAppointment(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, errors.ErrInvalidToken)
	}

	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	updated, err := h.userService.UpdateAppointment(
		c.Request().Context(),
		user.ID,
		req.Name,
		req.Email,
		req.PassportNumber,
		model.AppointmentDetails{
			Country:       req.Country,
			City:          req.City,
			PreferredDate: req.PreferredDate,
			VisaType:      req.VisaType,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "appointment details saved", updated)
}
