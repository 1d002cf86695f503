package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"medvisa/internal/cache"
	apperrors "medvisa/internal/errors"
)

const rateLimitKeyPrefix = "ratelimit:otp:"

// RateLimitOTP caps OTP requests per client IP over a fixed window, counted
// in Redis. When Redis is unreachable the limiter fails open: blocking login
// for everyone is worse than briefly losing the cap.
func RateLimitOTP(store *cache.Client, max int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rateLimitKeyPrefix + c.RealIP()
			count, err := store.Incr(c.Request().Context(), key, window)
			if err == nil && count > int64(max) {
				return c.JSON(http.StatusTooManyRequests, apperrors.Envelope{
					Success: false,
					Error:   "too many otp requests, try again later",
				})
			}
			return next(c)
		}
	}
}
