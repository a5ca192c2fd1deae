package repository

import (
	"github.com/SAID-SWIAAID/stagep/internal/pkg/docstore"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

// AuthRepo implements the auth service repositories over a document
// store. The same struct serves both the OTP and identity interfaces.
type AuthRepo struct {
	cfg   *models.Config
	store docstore.Store
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, store docstore.Store) *AuthRepo {
	return &AuthRepo{
		cfg:   cfg,
		store: store,
	}
}
