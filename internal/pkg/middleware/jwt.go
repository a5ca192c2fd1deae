package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/SAID-SWIAAID/stagep/internal/pkg/jwt"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/internal/utils"
)

// Context keys populated by the JWT guard
const (
	ContextUserID      = "user_id"
	ContextUserRole    = "user_role"
	ContextPhoneNumber = "phone_number"
)

// JWTAuthMiddleware creates a middleware that guards protected routes.
// It requires a "Bearer <token>" Authorization header and attaches the
// decoded identity to the request context. Expired tokens are reported
// distinctly from invalid ones so clients know to re-authenticate.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				if errors.Is(err, jwtpkg.ErrTokenExpired) {
					return utils.UnauthorizedResponse(c, "Token has expired")
				}
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if claims.UID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing uid claim")
			}

			c.Set(ContextUserID, claims.UID)
			c.Set(ContextUserRole, claims.Role)
			c.Set(ContextPhoneNumber, claims.PhoneNumber)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that restricts a route to one role.
// Must run after JWTAuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get(ContextUserRole) != role {
				return utils.ForbiddenResponse(c, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user's uid, or empty when
// the guard did not run
func UserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get(ContextUserID).(string); ok {
		return uid
	}
	return ""
}
