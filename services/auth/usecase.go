package auth

import (
	"context"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/SAID-SWIAAID/stagep/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// handle OTP
	GenerateOTP(ctx context.Context, phoneNumber string) (*models.GenerateOTPResponse, error)
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error)
	OTPStatus(ctx context.Context, phoneNumber string) (*models.OTPStatus, error)
	CleanupExpiredOTPs(ctx context.Context) (int64, error)

	// handle identity
	CompleteProfile(ctx context.Context, req *models.CompleteProfileRequest) (*models.User, error)
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)

	// password-based path, kept parallel to the OTP path
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}
