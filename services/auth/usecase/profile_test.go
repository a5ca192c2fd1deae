package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/auth"
)

// verifyFreshIdentity runs the OTP flow once and returns the minted identity
func verifyFreshIdentity(t *testing.T, uc *AuthUC, phone string) *models.User {
	t.Helper()

	ctx := context.Background()
	gen, err := uc.GenerateOTP(ctx, phone)
	require.NoError(t, err)
	resp, err := uc.VerifyOTP(ctx, phone, gen.Code)
	require.NoError(t, err)
	return resp.User
}

func TestCompleteProfile_Supplier(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	user := verifyFreshIdentity(t, uc, "+628123456789")
	require.False(t, user.ProfileCompleted)

	updated, err := uc.CompleteProfile(ctx, &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "+628123456789",
		UserType:    models.UserTypeSupplier,
		StoreName:   "Toko Budi",
		Category:    "groceries",
		Address:     "Jl. Sudirman 1",
	})
	require.NoError(t, err)
	assert.True(t, updated.ProfileCompleted)
	assert.Equal(t, "Budi Santoso", updated.FullName)
	assert.Equal(t, models.UserTypeSupplier, updated.UserType)

	// supplier companion record is created under the same uid
	supplier, err := uc.identityRepo.GetSupplierByUID(ctx, user.UID)
	require.NoError(t, err)
	assert.Equal(t, "Toko Budi", supplier.StoreName)
	assert.Equal(t, "groceries", supplier.Category)
	assert.Equal(t, "+628123456789", supplier.PhoneNumber)
}

func TestCompleteProfile_Client_NoSupplierRecord(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	user := verifyFreshIdentity(t, uc, "+628123456789")

	_, err := uc.CompleteProfile(ctx, &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Siti Rahma",
		Email:       "siti@example.com",
		PhoneNumber: "+628123456789",
		UserType:    models.UserTypeClient,
	})
	require.NoError(t, err)

	_, err = uc.identityRepo.GetSupplierByUID(ctx, user.UID)
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}

func TestCompleteProfile_MissingFields(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.CompleteProfile(context.Background(), &models.CompleteProfileRequest{
		UID:      "some-uid",
		UserType: models.UserTypeClient,
	})
	require.Error(t, err)

	var verr *auth.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"full_name", "email", "phone_number"}, verr.Missing)
}

func TestCompleteProfile_UnknownUID(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.CompleteProfile(context.Background(), &models.CompleteProfileRequest{
		UID:         "no-such-uid",
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "+628123456789",
		UserType:    models.UserTypeClient,
	})
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}

func TestCompleteProfile_InvalidUserType(t *testing.T) {
	uc, _ := newTestUC(t)

	user := verifyFreshIdentity(t, uc, "+628123456789")

	_, err := uc.CompleteProfile(context.Background(), &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "+628123456789",
		UserType:    "warlock",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidUserType)
}

func TestCompleteProfile_PhoneOwnedByOtherIdentity(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	other := verifyFreshIdentity(t, uc, "+628111111111")
	user := verifyFreshIdentity(t, uc, "+628222222222")

	// claiming another identity's phone number is rejected before any write
	_, err := uc.CompleteProfile(ctx, &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "+628111111111",
		UserType:    models.UserTypeClient,
	})
	assert.ErrorIs(t, err, auth.ErrPhoneAlreadyRegistered)

	// neither identity was touched
	got, err := uc.GetUserByUID(ctx, user.UID)
	require.NoError(t, err)
	assert.Equal(t, "+628222222222", got.PhoneNumber)
	assert.False(t, got.ProfileCompleted)

	got, err = uc.GetUserByUID(ctx, other.UID)
	require.NoError(t, err)
	assert.Equal(t, "+628111111111", got.PhoneNumber)
}

func TestCompleteProfile_OwnPhoneIsNotAConflict(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	user := verifyFreshIdentity(t, uc, "+628123456789")

	// re-submitting the identity's own phone number passes the check
	updated, err := uc.CompleteProfile(ctx, &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "+628123456789",
		UserType:    models.UserTypeClient,
	})
	require.NoError(t, err)
	assert.True(t, updated.ProfileCompleted)
}

func TestCompleteProfile_RepeatPreservesSupplierFields(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	user := verifyFreshIdentity(t, uc, "+628123456789")

	_, err := uc.CompleteProfile(ctx, &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		PhoneNumber: "+628123456789",
		UserType:    models.UserTypeSupplier,
		StoreName:   "Toko Budi",
		Category:    "groceries",
		Address:     "Jl. Sudirman 1",
	})
	require.NoError(t, err)

	// second completion without store fields must not wipe them
	_, err = uc.CompleteProfile(ctx, &models.CompleteProfileRequest{
		UID:         user.UID,
		FullName:    "Budi S.",
		Email:       "budi@example.com",
		PhoneNumber: "+628123456789",
		UserType:    models.UserTypeSupplier,
	})
	require.NoError(t, err)

	supplier, err := uc.identityRepo.GetSupplierByUID(ctx, user.UID)
	require.NoError(t, err)
	assert.Equal(t, "Toko Budi", supplier.StoreName)
	assert.Equal(t, "groceries", supplier.Category)
	assert.Equal(t, "Jl. Sudirman 1", supplier.Address)
}

func TestGetUserByUID(t *testing.T) {
	uc, _ := newTestUC(t)

	user := verifyFreshIdentity(t, uc, "+628123456789")

	got, err := uc.GetUserByUID(context.Background(), user.UID)
	require.NoError(t, err)
	assert.Equal(t, user.UID, got.UID)
	assert.Equal(t, user.PhoneNumber, got.PhoneNumber)

	_, err = uc.GetUserByUID(context.Background(), "no-such-uid")
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}
