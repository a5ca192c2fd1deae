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

// GetUserByPhone retrieves a user by phone number
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	var user models.User
	err := r.store.FindOne(ctx, constants.CollectionUsers, constants.FieldPhoneNumber, phoneNumber, &user)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByUID retrieves a user by uid
func (r *AuthRepo) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.store.FindOne(ctx, constants.CollectionUsers, constants.FieldUID, uid, &user)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new identity record
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := r.store.Add(ctx, constants.CollectionUsers, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser merges the given fields into the identity record; fields
// not supplied stay untouched
func (r *AuthRepo) UpdateUser(ctx context.Context, uid string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().UTC()

	filter := docstore.Filter{constants.FieldUID: uid}
	err := r.store.Update(ctx, constants.CollectionUsers, filter, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return auth.ErrIdentityNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpsertSupplier writes the supplier companion record keyed by uid
func (r *AuthRepo) UpsertSupplier(ctx context.Context, supplier *models.Supplier) error {
	supplier.UpdatedAt = time.Now().UTC()
	if supplier.CreatedAt.IsZero() {
		supplier.CreatedAt = supplier.UpdatedAt
	}

	filter := docstore.Filter{constants.FieldUID: supplier.UID}
	if err := r.store.Upsert(ctx, constants.CollectionSuppliers, filter, supplier); err != nil {
		return fmt.Errorf("failed to upsert supplier: %w", err)
	}
	return nil
}

// GetSupplierByUID retrieves the supplier companion record
func (r *AuthRepo) GetSupplierByUID(ctx context.Context, uid string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.store.FindOne(ctx, constants.CollectionSuppliers, constants.FieldUID, uid, &supplier)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return &supplier, nil
}
