package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/middleware"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/internal/utils"
	"github.com/SAID-SWIAAID/stagep/services/catalog"
)

// ProductHandler handles HTTP requests for catalog operations
type ProductHandler struct {
	catalogUC catalog.CatalogUC
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogUC catalog.CatalogUC) *ProductHandler {
	return &ProductHandler{
		catalogUC: catalogUC,
	}
}

// CreateProduct handles product creation for the authenticated supplier
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	supplierID := middleware.UserIDFromContext(c)
	if supplierID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Name == "" {
		return utils.BadRequestResponse(c, "Product name is required")
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), supplierID, &req)
	if err != nil {
		logger.Error("Failed to create product",
			logger.ErrorField(err),
			logger.String("supplier_id", supplierID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create product")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Product created successfully", product)
}

// GetProduct handles single product retrieval
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve product")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

// ListProducts lists the authenticated supplier's own products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	supplierID := middleware.UserIDFromContext(c)
	if supplierID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	products, err := h.catalogUC.ListProductsBySupplier(c.Request().Context(), supplierID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list products")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

// UpdateProduct handles product updates, rejecting writes to products
// owned by another supplier
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	supplierID := middleware.UserIDFromContext(c)
	if supplierID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	productID := c.Param("id")
	if productID == "" {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req models.ProductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), supplierID, productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			return utils.NotFoundResponse(c, "Product not found")
		case errors.Is(err, catalog.ErrNotProductOwner):
			return utils.ForbiddenResponse(c, "You do not own this product")
		}
		logger.Error("Failed to update product",
			logger.ErrorField(err),
			logger.String("product_id", productID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update product")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct handles product deletion with the same ownership gate
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	supplierID := middleware.UserIDFromContext(c)
	if supplierID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	productID := c.Param("id")
	if productID == "" {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	err := h.catalogUC.DeleteProduct(c.Request().Context(), supplierID, productID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			return utils.NotFoundResponse(c, "Product not found")
		case errors.Is(err, catalog.ErrNotProductOwner):
			return utils.ForbiddenResponse(c, "You do not own this product")
		}
		return utils.InternalServerErrorResponse(c, "Failed to delete product")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
