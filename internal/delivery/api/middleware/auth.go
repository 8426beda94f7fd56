package middleware

import (
	"slices"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token into the request actor.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		userID, err := claims.UserID()
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetActor(c, usecase.Actor{UserID: userID, Role: role})

		return next(c)
	}
}

// RequireRole only lets actors with one of roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetRole(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !slices.Contains(roles, role) {
				return domainerrors.ErrForbidden.WithDetails("role " + role.String() + " is not allowed")
			}

			return next(c)
		}
	}
}
