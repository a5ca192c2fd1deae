package usecase

import (
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/catalog"
)

// CatalogUC implements the product catalog usecase
type CatalogUC struct {
	productRepo catalog.ProductRepo
	cfg         *models.Config
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(productRepo catalog.ProductRepo, cfg *models.Config) *CatalogUC {
	return &CatalogUC{
		productRepo: productRepo,
		cfg:         cfg,
	}
}
