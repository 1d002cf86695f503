package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"medvisa/internal/auth"
	"medvisa/internal/cache"
	"medvisa/internal/config"
	"medvisa/internal/handler"
	"medvisa/internal/metrics"
	"medvisa/internal/middleware"
	"medvisa/internal/repository"
)

// Deps carries everything route registration needs.
type Deps struct {
	Config     *config.Config
	JWTService *auth.JWTService
	Cache      *cache.Client
	Users      repository.UserRepository
	Admins     repository.AdminRepository
	Collector  *metrics.Collector

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	UploadHandler  *handler.UploadHandler
	PaymentHandler *handler.PaymentHandler
	AdminHandler   *handler.AdminHandler
}

// Register wires routes and middleware. The route table is static: every
// handler is bound at startup.
func Register(e *echo.Echo, d Deps) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(d.Collector.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/otp/request", d.AuthHandler.RequestOTP,
		middleware.RateLimitOTP(d.Cache, d.Config.OTPRateLimit, d.Config.OTPRateWindow))
	api.POST("/auth/otp/verify", d.AuthHandler.VerifyOTP)
	api.POST("/admin/login", d.AuthHandler.AdminLogin)
	api.POST("/payments/webhook", d.PaymentHandler.Webhook)

	// Applicant routes (user token required)
	user := api.Group("", middleware.RequireAuth(d.JWTService, d.Users, d.Admins, auth.PrincipalUser))
	user.GET("/me", d.UserHandler.Me)
	user.PUT("/me/appointment", d.UserHandler.UpdateAppointment)
	user.POST("/me/appointment-slip", d.UploadHandler.UploadSlip)
	user.GET("/me/appointment-slip", d.UploadHandler.GetSlip)
	user.POST("/payments/order", d.PaymentHandler.CreateOrder)
	user.GET("/payments", d.PaymentHandler.ListTransactions)

	// Staff routes (admin token required)
	admin := api.Group("/admin", middleware.RequireAuth(d.JWTService, d.Users, d.Admins, auth.PrincipalAdmin))
	admin.GET("/users", d.AdminHandler.ListUsers)
	admin.GET("/users/:id", d.AdminHandler.GetUser)
	admin.GET("/users/:id/activity", d.AdminHandler.GetUserActivity)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
