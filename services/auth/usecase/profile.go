package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/internal/utils"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// CompleteProfile upgrades an existing identity with profile data.
// Updates are merge-only: fields not supplied are never cleared. When
// the user registers as a supplier, a companion supplier record is
// upserted under the same uid.
func (u *AuthUC) CompleteProfile(ctx context.Context, req *models.CompleteProfileRequest) (*models.User, error) {
	var missing []string
	if strings.TrimSpace(req.UID) == "" {
		missing = append(missing, "uid")
	}
	if strings.TrimSpace(req.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if strings.TrimSpace(req.UserType) == "" {
		missing = append(missing, "user_type")
	}
	if len(missing) > 0 {
		return nil, &auth.ValidationError{Missing: missing}
	}

	userType := strings.TrimSpace(req.UserType)
	if !models.ValidUserType(userType) {
		return nil, auth.ErrInvalidUserType
	}

	phone, err := utils.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, auth.ErrInvalidPhoneNumber
	}

	if _, err := u.identityRepo.GetUserByUID(ctx, req.UID); err != nil {
		return nil, err
	}

	// one identity per phone number; reject a phone already owned by a
	// different uid before the store's unique index turns it into an
	// opaque write failure
	if owner, err := u.identityRepo.GetUserByPhone(ctx, phone); err == nil {
		if owner.UID != req.UID {
			return nil, auth.ErrPhoneAlreadyRegistered
		}
	} else if !errors.Is(err, auth.ErrIdentityNotFound) {
		return nil, err
	}

	fields := map[string]interface{}{
		"full_name":         strings.TrimSpace(req.FullName),
		"email":             strings.TrimSpace(req.Email),
		"phone_number":      phone,
		"user_type":         userType,
		"profile_completed": true,
	}
	if err := u.identityRepo.UpdateUser(ctx, req.UID, fields); err != nil {
		return nil, err
	}

	if userType == models.UserTypeSupplier {
		if err := u.upsertSupplierRecord(ctx, req.UID, phone, req); err != nil {
			return nil, err
		}
	}

	user, err := u.identityRepo.GetUserByUID(ctx, req.UID)
	if err != nil {
		return nil, err
	}

	logger.Info("Profile completed",
		logger.String("uid", user.UID),
		logger.String("user_type", userType))

	return user, nil
}

// upsertSupplierRecord keeps the denormalized supplier document in step
// with the profile, preserving supplier-only fields across updates
func (u *AuthUC) upsertSupplierRecord(ctx context.Context, uid, phone string, req *models.CompleteProfileRequest) error {
	supplier, err := u.identityRepo.GetSupplierByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, auth.ErrIdentityNotFound) {
			return err
		}
		supplier = &models.Supplier{UID: uid}
	}

	supplier.PhoneNumber = phone
	if req.StoreName != "" {
		supplier.StoreName = strings.TrimSpace(req.StoreName)
	}
	if req.Category != "" {
		supplier.Category = strings.TrimSpace(req.Category)
	}
	if req.Address != "" {
		supplier.Address = strings.TrimSpace(req.Address)
	}

	return u.identityRepo.UpsertSupplier(ctx, supplier)
}

// GetUserByUID retrieves an identity by uid
func (u *AuthUC) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	return u.identityRepo.GetUserByUID(ctx, uid)
}
