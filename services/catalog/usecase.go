package catalog

import (
	"context"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/SAID-SWIAAID/stagep/services/catalog CatalogUC

// CatalogUC represents the product catalog usecase interface. Every
// write operation takes the acting supplier's uid and enforces
// ownership before touching the record.
type CatalogUC interface {
	CreateProduct(ctx context.Context, supplierID string, req *models.ProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	ListProductsBySupplier(ctx context.Context, supplierID string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, supplierID, productID string, req *models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, supplierID, productID string) error
}
