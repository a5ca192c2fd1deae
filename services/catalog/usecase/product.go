package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/catalog"
)

// CreateProduct adds a catalog entry owned by the acting supplier
func (u *CatalogUC) CreateProduct(ctx context.Context, supplierID string, req *models.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := u.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created",
		logger.String("product_id", product.ID),
		logger.String("supplier_id", supplierID))

	return product, nil
}

// GetProduct retrieves a catalog entry. Reads are not ownership-gated;
// the catalog is visible to any authenticated caller.
func (u *CatalogUC) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	return u.productRepo.GetProductByID(ctx, productID)
}

// ListProductsBySupplier retrieves every catalog entry owned by a supplier
func (u *CatalogUC) ListProductsBySupplier(ctx context.Context, supplierID string) ([]*models.Product, error) {
	return u.productRepo.GetProductsBySupplier(ctx, supplierID)
}

// UpdateProduct merges the writable fields into an owned catalog entry.
// Writes by anyone other than the owning supplier are rejected.
func (u *CatalogUC) UpdateProduct(ctx context.Context, supplierID, productID string, req *models.ProductRequest) (*models.Product, error) {
	if err := u.checkOwnership(ctx, supplierID, productID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"price": req.Price,
		"stock": req.Stock,
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		fields["name"] = name
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		fields["description"] = desc
	}
	if cat := strings.TrimSpace(req.Category); cat != "" {
		fields["category"] = cat
	}

	if err := u.productRepo.UpdateProduct(ctx, productID, fields); err != nil {
		return nil, err
	}

	return u.productRepo.GetProductByID(ctx, productID)
}

// DeleteProduct removes an owned catalog entry
func (u *CatalogUC) DeleteProduct(ctx context.Context, supplierID, productID string) error {
	if err := u.checkOwnership(ctx, supplierID, productID); err != nil {
		return err
	}

	if err := u.productRepo.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	logger.Info("Product deleted",
		logger.String("product_id", productID),
		logger.String("supplier_id", supplierID))

	return nil
}

func (u *CatalogUC) checkOwnership(ctx context.Context, supplierID, productID string) error {
	product, err := u.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SupplierID != supplierID {
		return catalog.ErrNotProductOwner
	}
	return nil
}
