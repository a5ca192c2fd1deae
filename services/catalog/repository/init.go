package repository

import (
	"github.com/SAID-SWIAAID/stagep/internal/pkg/docstore"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

// CatalogRepo implements the catalog repository over a document store
type CatalogRepo struct {
	cfg   *models.Config
	store docstore.Store
}

// NewCatalogRepo creates a new catalog repository instance
func NewCatalogRepo(cfg *models.Config, store docstore.Store) *CatalogRepo {
	return &CatalogRepo{
		cfg:   cfg,
		store: store,
	}
}
