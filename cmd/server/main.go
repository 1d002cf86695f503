package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	_ "medvisa/docs" // swagger docs

	"medvisa/internal/auth"
	"medvisa/internal/cache"
	"medvisa/internal/config"
	"medvisa/internal/db"
	"medvisa/internal/handler"
	"medvisa/internal/metrics"
	"medvisa/internal/model"
	"medvisa/internal/repository"
	"medvisa/internal/router"
	"medvisa/internal/service"
	"medvisa/internal/storage"
)

// @title Medical Visa Portal API
// @version 1.0
// @description Medical-visa appointment and payment portal with OTP login, payment capture and document upload.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.OTPToken{},
		&model.ActivityLog{},
		&model.PaymentTransaction{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	fileStore, err := newFileStore(cfg)
	if err != nil {
		log.Fatalf("file store init: %v", err)
	}

	collector := metrics.NewCollector(prometheus.NewRegistry())

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	otpRepo := repository.NewOTPRepository(gormDB)
	logRepo := repository.NewActivityLogRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	otpStore := auth.NewOTPStore(otpRepo, cfg.OTPTTL)

	go purgeExpiredOTPs(otpRepo)

	// Services
	authService := service.NewAuthService(userRepo, adminRepo, otpStore, jwtService, service.NewLogSMSSender(), collector)
	userService := service.NewUserService(userRepo, logRepo, cacheClient)
	uploadService := service.NewUploadService(userRepo, logRepo, fileStore, cfg.MaxUploadBytes, cacheClient, collector)
	paymentService := service.NewPaymentService(userRepo, paymentRepo, service.NewHMACVerifier(cfg.WebhookSecret), collector)

	// Handlers
	router.Register(e, router.Deps{
		Config:         cfg,
		JWTService:     jwtService,
		Cache:          cacheClient,
		Users:          userRepo,
		Admins:         adminRepo,
		Collector:      collector,
		AuthHandler:    handler.NewAuthHandler(authService),
		UserHandler:    handler.NewUserHandler(userService),
		UploadHandler:  handler.NewUploadHandler(uploadService),
		PaymentHandler: handler.NewPaymentHandler(paymentService),
		AdminHandler:   handler.NewAdminHandler(userService),
	})

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(swaggerHost, "http://") && !strings.HasPrefix(swaggerHost, "https://") {
		swaggerHost = "http://" + swaggerHost
	}
	log.Printf("swagger documentation available at %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// purgeExpiredOTPs clears dead one-time codes hourly. Expired rows are
// already unverifiable; this only keeps the table from growing unbounded.
func purgeExpiredOTPs(otps repository.OTPRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if err := otps.DeleteExpired(context.Background(), time.Now()); err != nil {
			log.Printf("otp cleanup: %v", err)
		}
	}
}

func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.StorageDriver == "cloudinary" {
		return storage.NewCloudinaryStore(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "appointment-slips")
	}
	return storage.NewLocalStore(cfg.UploadDir)
}
