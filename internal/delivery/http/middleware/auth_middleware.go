package middleware

import (
	"strings"

	"feria/internal/delivery/http/response"
	"feria/internal/domain/service"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session-token authentication and
// role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	nav      usecase.NavigationUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, nav usecase.NavigationUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, nav: nav}
}

// Authenticate validates the bearer token and checks it belongs to the
// session currently hydrated on the server. A token that outlived its
// session, for example after a logout, is rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Necesitás iniciar sesión.")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "El token debe ser de tipo Bearer.")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Tu sesión no es válida o expiró.")
		}

		snapshot := m.nav.Current()
		if snapshot.User == nil || snapshot.User.ID != claims.UserID {
			return response.Unauthorized(c, "SESSION_ENDED", "Tu sesión terminó, volvé a ingresar.")
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN_ROLE", "No tenés permisos para esta sección.")
			}

			return next(c)
		}
	}
}
