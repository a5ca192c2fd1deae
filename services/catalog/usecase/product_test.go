package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/docstore"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/catalog"
	"github.com/SAID-SWIAAID/stagep/services/catalog/repository"
)

func newTestUC(t *testing.T) *CatalogUC {
	t.Helper()

	cfg := &models.Config{}
	repo := repository.NewCatalogRepo(cfg, docstore.NewMemoryStore())
	return NewCatalogUC(repo, cfg)
}

func TestCreateAndGetProduct(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, "supplier-1", &models.ProductRequest{
		Name:     "Beras Premium 5kg",
		Category: "groceries",
		Price:    75000,
		Stock:    40,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "supplier-1", created.SupplierID)

	got, err := uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beras Premium 5kg", got.Name)
	assert.Equal(t, 40, got.Stock)
}

func TestGetProduct_NotFound(t *testing.T) {
	uc := newTestUC(t)

	_, err := uc.GetProduct(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestListProductsBySupplier(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, "supplier-1", &models.ProductRequest{Name: "A", Price: 1})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, "supplier-1", &models.ProductRequest{Name: "B", Price: 2})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, "supplier-2", &models.ProductRequest{Name: "C", Price: 3})
	require.NoError(t, err)

	products, err := uc.ListProductsBySupplier(ctx, "supplier-1")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestUpdateProduct_OwnershipEnforced(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, "supplier-1", &models.ProductRequest{
		Name:  "Beras Premium 5kg",
		Price: 75000,
		Stock: 40,
	})
	require.NoError(t, err)

	// another supplier cannot touch the record
	_, err = uc.UpdateProduct(ctx, "supplier-2", created.ID, &models.ProductRequest{Price: 1})
	assert.ErrorIs(t, err, catalog.ErrNotProductOwner)

	updated, err := uc.UpdateProduct(ctx, "supplier-1", created.ID, &models.ProductRequest{
		Price: 80000,
		Stock: 35,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(80000), updated.Price)
	assert.Equal(t, 35, updated.Stock)
	// name was not in the update request and survives
	assert.Equal(t, "Beras Premium 5kg", updated.Name)
}

func TestDeleteProduct_OwnershipEnforced(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, "supplier-1", &models.ProductRequest{Name: "A", Price: 1})
	require.NoError(t, err)

	err = uc.DeleteProduct(ctx, "supplier-2", created.ID)
	assert.ErrorIs(t, err, catalog.ErrNotProductOwner)

	require.NoError(t, uc.DeleteProduct(ctx, "supplier-1", created.ID))

	_, err = uc.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
