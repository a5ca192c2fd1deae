package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/constants"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/docstore"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/catalog"
)

// CreateProduct inserts a new catalog entry
func (r *CatalogRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := r.store.Add(ctx, constants.CollectionProducts, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByID retrieves a catalog entry by its id
func (r *CatalogRepo) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := r.store.FindOne(ctx, constants.CollectionProducts, constants.FieldProductID, productID, &product)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// GetProductsBySupplier retrieves every catalog entry owned by a supplier
func (r *CatalogRepo) GetProductsBySupplier(ctx context.Context, supplierID string) ([]*models.Product, error) {
	var products []*models.Product
	err := r.store.Query(ctx, constants.CollectionProducts, constants.FieldSupplierID, supplierID, &products)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProduct merges the given fields into a catalog entry
func (r *CatalogRepo) UpdateProduct(ctx context.Context, productID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().UTC()

	filter := docstore.Filter{constants.FieldProductID: productID}
	err := r.store.Update(ctx, constants.CollectionProducts, filter, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return catalog.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteProduct removes a catalog entry
func (r *CatalogRepo) DeleteProduct(ctx context.Context, productID string) error {
	filter := docstore.Filter{constants.FieldProductID: productID}
	if err := r.store.Delete(ctx, constants.CollectionProducts, filter); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
