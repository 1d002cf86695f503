package middleware

import (
	"github.com/labstack/echo/v4"

	"medvisa/internal/model"
)

// CurrentUser extracts the authenticated applicant from the request context.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(principalContextKey).(*model.User)
	return user, ok
}

// CurrentAdmin extracts the authenticated staff member from the request context.
func CurrentAdmin(c echo.Context) (*model.Admin, bool) {
	admin, ok := c.Get(principalContextKey).(*model.Admin)
	return admin, ok
}
