package usecase

import (
	"context"
	"time"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
)

// CleanupExpiredOTPs removes every OTP record whose expiry has passed,
// regardless of its used flag, and returns the number removed
func (u *AuthUC) CleanupExpiredOTPs(ctx context.Context) (int64, error) {
	removed, err := u.otpRepo.DeleteExpiredOTPs(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		logger.Info("Cleaned up expired OTPs",
			logger.Int64("removed", removed))
	}
	return removed, nil
}

// StartCleanupSweep runs CleanupExpiredOTPs on a fixed interval until the
// context is cancelled. Sweep failures are logged and retried on the
// next tick; a flaky store must not kill the sweeper.
func (u *AuthUC) StartCleanupSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := u.CleanupExpiredOTPs(ctx); err != nil {
					logger.Warn("OTP cleanup sweep failed", logger.Err(err))
				}
			}
		}
	}()
}
