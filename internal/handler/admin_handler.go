package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medvisa/internal/service"
)

// AdminHandler handles the staff read surface.
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers godoc
// @Summary List applicants
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, "", users)
}

// GetUser godoc
// @Summary Fetch one applicant
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "invalid user id")
	}

	user, err := h.userService.GetProfile(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, "", user)
}

// GetUserActivity godoc
// @Summary Fetch an applicant's activity log
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /admin/users/{id}/activity [get]
func (h *AdminHandler) GetUserActivity(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "invalid user id")
	}

	entries, err := h.userService.GetActivity(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, "", entries)
}
