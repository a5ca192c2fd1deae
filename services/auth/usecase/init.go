package usecase

import (
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	otpRepo      auth.OTPRepo
	identityRepo auth.IdentityRepo
	cfg          *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	otpRepo auth.OTPRepo,
	identityRepo auth.IdentityRepo,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		otpRepo:      otpRepo,
		identityRepo: identityRepo,
		cfg:          cfg,
	}
}
