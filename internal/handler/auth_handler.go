package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medvisa/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RequestOTPRequest asks for a login code.
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// VerifyOTPRequest exchanges a code for a bearer token.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// AdminLoginRequest carries staff credentials.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token     string      `json:"token"`
	Principal interface{} `json:"principal,omitempty"`
}

// RequestOTP godoc
// @Summary Request a one-time login code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RequestOTPRequest true "Phone number"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 429 {object} errors.Envelope
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	if err := h.authService.RequestOTP(c.Request().Context(), req.Phone); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "otp sent", nil)
}

// VerifyOTP godoc
// @Summary Verify a one-time code and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Phone and code"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	token, user, err := h.authService.VerifyOTP(c.Request().Context(), req.Phone, req.OTP)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "login successful", TokenResponse{
		Token:     token,
		Principal: user,
	})
}

// AdminLogin godoc
// @Summary Staff username/password login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Credentials"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	token, admin, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, "login successful", TokenResponse{
		Token:     token,
		Principal: admin,
	})
}
