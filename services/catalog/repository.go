package catalog

import (
	"context"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

// ProductRepo persists supplier-owned catalog entries
type ProductRepo interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, productID string) (*models.Product, error)
	GetProductsBySupplier(ctx context.Context, supplierID string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, fields map[string]interface{}) error
	DeleteProduct(ctx context.Context, productID string) error
}
