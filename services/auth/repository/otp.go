package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/constants"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/docstore"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// UpsertOTP replaces any live OTP record for the phone number with the
// given one. The replace-or-insert is a single store operation, so two
// concurrent generates for the same number cannot interleave into a
// half-written record.
func (r *AuthRepo) UpsertOTP(ctx context.Context, otp *models.OTP) error {
	filter := docstore.Filter{constants.FieldPhoneNumber: otp.PhoneNumber}
	if err := r.store.Upsert(ctx, constants.CollectionOTPs, filter, otp); err != nil {
		return fmt.Errorf("failed to upsert OTP: %w", err)
	}
	return nil
}

// GetOTPByPhone retrieves the live OTP record for a phone number,
// expired or not. Expiry is the caller's call.
func (r *AuthRepo) GetOTPByPhone(ctx context.Context, phoneNumber string) (*models.OTP, error) {
	var otp models.OTP
	err := r.store.FindOne(ctx, constants.CollectionOTPs, constants.FieldPhoneNumber, phoneNumber, &otp)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, auth.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	return &otp, nil
}

// MarkOTPUsed flips the used flag, conditionally on it still being
// false. Exactly one of two racing verifies can succeed here; the
// loser sees the record already claimed.
func (r *AuthRepo) MarkOTPUsed(ctx context.Context, phoneNumber string) error {
	filter := docstore.Filter{
		constants.FieldPhoneNumber: phoneNumber,
		constants.FieldUsed:        false,
	}
	err := r.store.Update(ctx, constants.CollectionOTPs, filter, map[string]interface{}{
		constants.FieldUsed: true,
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return auth.ErrOTPAlreadyUsed
		}
		return fmt.Errorf("failed to mark OTP as used: %w", err)
	}
	return nil
}

// DeleteOTP consumes the OTP record for a phone number
func (r *AuthRepo) DeleteOTP(ctx context.Context, phoneNumber string) error {
	filter := docstore.Filter{constants.FieldPhoneNumber: phoneNumber}
	if err := r.store.Delete(ctx, constants.CollectionOTPs, filter); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

// DeleteExpiredOTPs removes every OTP past its expiry, used or not
func (r *AuthRepo) DeleteExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	filter := docstore.Filter{constants.FieldExpiresAt: docstore.Lt(now)}
	deleted, err := r.store.DeleteMany(ctx, constants.CollectionOTPs, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired OTPs: %w", err)
	}
	return deleted, nil
}
