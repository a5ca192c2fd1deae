package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/internal/utils"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// GenerateOTP handles OTP generation requests
func (h *AuthHandler) GenerateOTP(c echo.Context) error {
	var req models.GenerateOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	resp, err := h.authUC.GenerateOTP(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPhoneNumber) {
			return utils.BadRequestResponse(c, "Invalid phone number format")
		}
		logger.Error("Failed to generate OTP",
			logger.ErrorField(err),
			logger.String("endpoint", "GenerateOTP"),
		)
		return utils.InternalServerErrorResponse(c, "Failed to generate OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", resp)
}

// VerifyOTP handles OTP verification requests. Failure causes map to
// distinct client messages so the caller knows whether to retry the
// code or request a new one.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Phone number and OTP are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, auth.ErrOTPNotFound):
			return utils.BadRequestResponse(c, "No OTP found for this phone number.")
		case errors.Is(err, auth.ErrOTPExpired):
			return utils.BadRequestResponse(c, "OTP has expired. Please request a new one.")
		case errors.Is(err, auth.ErrOTPAlreadyUsed):
			return utils.BadRequestResponse(c, "OTP has already been used.")
		case errors.Is(err, auth.ErrInvalidOTP):
			return utils.BadRequestResponse(c, "Invalid OTP.")
		}
		logger.Error("Failed to verify OTP",
			logger.ErrorField(err),
			logger.String("endpoint", "VerifyOTP"),
		)
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}

// OTPStatus reports whether a pending OTP exists and its expiry state
func (h *AuthHandler) OTPStatus(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	status, err := h.authUC.OTPStatus(c.Request().Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, auth.ErrOTPNotFound):
			return utils.NotFoundResponse(c, "No OTP found for this phone number.")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get OTP status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP status retrieved", status)
}

// CleanupOTPs triggers an immediate sweep of expired OTP records
func (h *AuthHandler) CleanupOTPs(c echo.Context) error {
	removed, err := h.authUC.CleanupExpiredOTPs(c.Request().Context())
	if err != nil {
		logger.Error("Failed to clean up expired OTPs", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to clean up expired OTPs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Expired OTPs cleaned up", map[string]int64{
		"removed": removed,
	})
}

// CompleteProfile handles profile completion requests
func (h *AuthHandler) CompleteProfile(c echo.Context) error {
	var req models.CompleteProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.CompleteProfile(c.Request().Context(), &req)
	if err != nil {
		var verr *auth.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.BadRequestResponse(c, verr.Error())
		case errors.Is(err, auth.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, auth.ErrInvalidUserType):
			return utils.BadRequestResponse(c, "Invalid user type")
		case errors.Is(err, auth.ErrIdentityNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, auth.ErrPhoneAlreadyRegistered):
			return utils.ConflictResponse(c, "Phone number is already registered")
		}
		logger.Error("Failed to complete profile",
			logger.ErrorField(err),
			logger.String("uid", req.UID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to complete profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile completed successfully", user)
}

// Register handles password-based supplier registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		var verr *auth.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.BadRequestResponse(c, verr.Error())
		case errors.Is(err, auth.ErrInvalidPhoneNumber):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, auth.ErrPhoneAlreadyRegistered):
			return utils.ConflictResponse(c, "Phone number is already registered")
		}
		logger.Error("Failed to register supplier", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to register")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registered successfully", resp)
}

// Login handles password-based login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Phone number and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid phone number or password")
		}
		logger.Error("Failed to log in", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// GetUser handles identity retrieval requests for authenticated callers
func (h *AuthHandler) GetUser(c echo.Context) error {
	uid := c.Param("id")
	if uid == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.authUC.GetUserByUID(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}
