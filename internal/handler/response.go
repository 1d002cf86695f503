package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"medvisa/internal/errors"
)

func respondOK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, errors.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError maps a domain error to the uniform envelope. The slip-exists
// conflict additionally echoes the current path so the caller can retry with
// replace_existing set.
func respondError(c echo.Context, err error) error {
	var slipErr *errors.SlipExistsError
	if stderrors.As(err, &slipErr) {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, errors.Envelope{
			Success: false,
			Error:   httpErr.Message,
			Data: map[string]string{
				"appointment_slip_path": slipErr.CurrentPath,
			},
		})
	}

	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, errors.Envelope{
		Success: false,
		Error:   httpErr.Message,
	})
}

func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errors.Envelope{
		Success: false,
		Error:   message,
	})
}
