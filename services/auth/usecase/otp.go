package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	jwtpkg "github.com/SAID-SWIAAID/stagep/internal/pkg/jwt"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/internal/utils"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// GenerateOTP creates a new OTP for the given phone number, replacing
// any pending one in place
func (u *AuthUC) GenerateOTP(ctx context.Context, phoneNumber string) (*models.GenerateOTPResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidPhoneNumber
	}

	code := utils.GenerateOTPCode(u.cfg.OTP.CodeLength)
	now := time.Now().UTC()

	otp := &models.OTP{
		PhoneNumber: phone,
		Code:        code,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute),
		Used:        false,
	}

	if err := u.otpRepo.UpsertOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	// Actual SMS delivery is an out-of-band provider concern; the code
	// is logged instead so it can be picked up in development.
	logger.Info("Generated OTP",
		logger.String("phone_number", phone),
		logger.Time("expires_at", otp.ExpiresAt))

	resp := &models.GenerateOTPResponse{ExpiresAt: otp.ExpiresAt}
	if u.cfg.App.Environment != "production" {
		resp.Code = code
	}
	return resp, nil
}

// VerifyOTP validates a submitted code and, on success, consumes the
// record, resolves the caller's identity and mints an access token.
//
// The checks run in a fixed order: missing record, then expiry, then
// the used flag, then code match. Expiry is a precondition on the whole
// record and is reported even when the submitted code is also wrong.
func (u *AuthUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidPhoneNumber
	}

	otp, err := u.otpRepo.GetOTPByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	if otp.IsExpired(time.Now().UTC()) {
		if err := u.otpRepo.DeleteOTP(ctx, phone); err != nil {
			logger.Warn("Failed to delete expired OTP",
				logger.String("phone_number", phone),
				logger.Err(err))
		}
		return nil, auth.ErrOTPExpired
	}

	if otp.Used {
		return nil, auth.ErrOTPAlreadyUsed
	}

	if otp.Code != code {
		// record left untouched; the caller may retry until expiry
		return nil, auth.ErrInvalidOTP
	}

	// Conditional flip of the used flag. If two verifies race for the
	// same record, exactly one gets past this line.
	if err := u.otpRepo.MarkOTPUsed(ctx, phone); err != nil {
		return nil, err
	}

	user, err := u.findOrCreateByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	// A failure here leaves the record marked used and inert, blocking
	// any further verification of this code. Fail closed over silent
	// reuse; the cleanup sweep reclaims the row at expiry.
	if err := u.otpRepo.DeleteOTP(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.UID, user.PhoneNumber, user.UserType, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("OTP verified",
		logger.String("phone_number", phone),
		logger.String("uid", user.UID))

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}

// OTPStatus reports the state of a pending OTP without exposing the code
func (u *AuthUC) OTPStatus(ctx context.Context, phoneNumber string) (*models.OTPStatus, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidPhoneNumber
	}

	otp, err := u.otpRepo.GetOTPByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	return &models.OTPStatus{
		PhoneNumber: otp.PhoneNumber,
		ExpiresAt:   otp.ExpiresAt,
		Used:        otp.Used,
		IsExpired:   otp.IsExpired(time.Now().UTC()),
	}, nil
}

// findOrCreateByPhone loads the identity for a phone number, creating a
// bare one on first verification. Duplicate creation is prevented by
// the verify flow itself: only one verify can win a live OTP record.
func (u *AuthUC) findOrCreateByPhone(ctx context.Context, phone string) (*models.User, error) {
	user, err := u.identityRepo.GetUserByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, auth.ErrIdentityNotFound) {
		return nil, err
	}

	user = &models.User{
		UID:              uuid.New().String(),
		PhoneNumber:      phone,
		ProfileCompleted: false,
	}
	if err := u.identityRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created new identity",
		logger.String("phone_number", phone),
		logger.String("uid", user.UID))

	return user, nil
}
