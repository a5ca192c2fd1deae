package auth

import (
	"context"
	"time"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

// OTPRepo persists one pending OTP per phone number
type OTPRepo interface {
	// UpsertOTP atomically replaces any live record for the phone
	// number with the given one
	UpsertOTP(ctx context.Context, otp *models.OTP) error

	// GetOTPByPhone returns the live record regardless of expiry
	// state; callers decide what expiry means. Returns ErrOTPNotFound
	// when no record exists.
	GetOTPByPhone(ctx context.Context, phoneNumber string) (*models.OTP, error)

	// MarkOTPUsed flips used to true, succeeding only if it was false.
	// Returns ErrOTPAlreadyUsed when a concurrent verify won the race.
	MarkOTPUsed(ctx context.Context, phoneNumber string) error

	// DeleteOTP consumes the record
	DeleteOTP(ctx context.Context, phoneNumber string) error

	// DeleteExpiredOTPs removes every record past its expiry
	DeleteExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

// IdentityRepo persists user identities and their supplier companions
type IdentityRepo interface {
	GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, uid string, fields map[string]interface{}) error

	UpsertSupplier(ctx context.Context, supplier *models.Supplier) error
	GetSupplierByUID(ctx context.Context, uid string) (*models.Supplier, error)
}
