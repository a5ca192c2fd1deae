package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/middleware"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all auth routes. The OTP and credential
// endpoints are public; identity reads and the cleanup trigger sit
// behind the JWT guard.
func (h *Handler) RegisterRoutes(e *echo.Echo, rateLimiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth")
	if rateLimiter != nil {
		authGroup.Use(rateLimiter)
	}

	authGroup.POST("/otp/generate", h.authHandler.GenerateOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.GET("/otp/status/:phone", h.authHandler.OTPStatus)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/complete-profile", h.authHandler.CompleteProfile)

	jwtGuard := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// manual sweep trigger, admin only
	authGroup.POST("/otp/cleanup", h.authHandler.CleanupOTPs,
		jwtGuard, middleware.RequireRole(models.UserTypeAdmin))

	userGroup := e.Group("/users", jwtGuard)
	userGroup.GET("/:id", h.authHandler.GetUser)
}
