package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/SAID-SWIAAID/stagep/internal/pkg/jwt"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/internal/utils"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// Register creates a supplier identity protected by a password. This is
// the password-based acquisition path; it shares the token issuer with
// OTP verification but nothing else.
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	var missing []string
	if strings.TrimSpace(req.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(req.StoreName) == "" {
		missing = append(missing, "store_name")
	}
	if strings.TrimSpace(req.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, &auth.ValidationError{Missing: missing}
	}

	phone, err := utils.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidPhoneNumber
	}

	if _, err := u.identityRepo.GetUserByPhone(ctx, phone); err == nil {
		return nil, auth.ErrPhoneAlreadyRegistered
	} else if !errors.Is(err, auth.ErrIdentityNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UID:              uuid.New().String(),
		PhoneNumber:      phone,
		FullName:         strings.TrimSpace(req.StoreName),
		UserType:         models.UserTypeSupplier,
		ProfileCompleted: false,
		PasswordHash:     string(hash),
	}
	if err := u.identityRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		UID:         user.UID,
		PhoneNumber: phone,
		StoreName:   strings.TrimSpace(req.StoreName),
		Category:    strings.TrimSpace(req.Category),
		Address:     strings.TrimSpace(req.Address),
	}
	if err := u.identityRepo.UpsertSupplier(ctx, supplier); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.UID, user.PhoneNumber, user.UserType, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Supplier registered",
		logger.String("uid", user.UID),
		logger.String("phone_number", phone))

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}

// Login authenticates a password-protected identity. Missing identity,
// missing password and wrong password all collapse into the same error
// so the response doesn't reveal which phone numbers are registered.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := u.identityRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		// OTP-only identity; it has no password to check against
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.UID, user.PhoneNumber, user.UserType, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}
