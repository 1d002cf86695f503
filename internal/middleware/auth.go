package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"medvisa/internal/auth"
	apperrors "medvisa/internal/errors"
	"medvisa/internal/repository"
)

const principalContextKey = "principal"

// RequireAuth builds the authorization middleware for routes that demand a
// specific principal type (pass "" to accept any authenticated principal).
// Token extraction rides on echo-jwt; verification is delegated to the token
// service so the claims carry the principal type. On success the resolved
// principal record is injected into the request context; every failure
// short-circuits with the uniform envelope before the wrapped handler runs.
func RequireAuth(
	tokens *auth.JWTService,
	users repository.UserRepository,
	admins repository.AdminRepository,
	required auth.PrincipalType,
) echo.MiddlewareFunc {
	parse := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return rejectWith(c, apperrors.ErrAuthRequired)
			}
			return rejectWith(c, apperrors.ErrInvalidToken)
		},
	})

	resolve := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return rejectWith(c, apperrors.ErrInvalidToken)
			}
			if required != "" && claims.PrincipalType != required {
				return rejectWith(c, apperrors.ErrForbidden)
			}

			ctx := c.Request().Context()
			switch claims.PrincipalType {
			case auth.PrincipalUser:
				user, err := users.FindByID(ctx, claims.PrincipalID)
				if err != nil {
					return rejectResolveErr(c, err)
				}
				c.Set(principalContextKey, user)
			case auth.PrincipalAdmin:
				admin, err := admins.FindByID(ctx, claims.PrincipalID)
				if err != nil {
					return rejectResolveErr(c, err)
				}
				c.Set(principalContextKey, admin)
			default:
				return rejectWith(c, apperrors.ErrInvalidToken)
			}

			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(resolve(next))
	}
}

// rejectResolveErr separates a deleted principal from a persistence failure:
// only the former is an authentication problem.
func rejectResolveErr(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// principal deleted after token issuance
		return rejectWith(c, apperrors.ErrInvalidToken)
	}
	c.Logger().Errorf("resolve principal: %v", err)
	return rejectWith(c, err)
}

func rejectWith(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, apperrors.Envelope{
		Success: false,
		Error:   httpErr.Message,
	})
}
