package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"medvisa/internal/errors"
	"medvisa/internal/middleware"
	"medvisa/internal/service"
)

// UploadHandler handles appointment slip endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadSlip godoc
// @Summary Upload the appointment slip (payment required)
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Slip file (pdf or image, max 5 MiB)"
// @Param notes formData string false "Free-text notes"
// @Param replace_existing formData boolean false "Replace a previously uploaded slip"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /me/appointment-slip [post]
func (h *UploadHandler) UploadSlip(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, errors.ErrInvalidToken)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, errors.ErrFileRequired)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, errors.ErrFileRequired)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondBadRequest(c, "failed to read file")
	}

	result, err := h.uploadService.UploadAppointmentSlip(c.Request().Context(), service.UploadInput{
		UserID:          user.ID,
		Data:            data,
		MimeType:        fileHeader.Header.Get("Content-Type"),
		OriginalName:    fileHeader.Filename,
		Size:            fileHeader.Size,
		Notes:           c.FormValue("notes"),
		ReplaceExisting: c.FormValue("replace_existing") == "true",
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "appointment slip uploaded", result)
}

// GetSlip godoc
// @Summary Current appointment slip info
// @Tags upload
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /me/appointment-slip [get]
func (h *UploadHandler) GetSlip(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return respondError(c, errors.ErrInvalidToken)
	}

	if !user.HasAppointmentSlip() {
		return c.JSON(http.StatusNotFound, errors.Envelope{
			Success: false,
			Error:   "no appointment slip uploaded",
		})
	}

	return respondOK(c, http.StatusOK, "", map[string]string{
		"appointment_slip_path": user.AppointmentSlipPath,
	})
}
