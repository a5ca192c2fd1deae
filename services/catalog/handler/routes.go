package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/middleware"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/catalog/handler/http"
)

// Handler coordinates the HTTP handlers for the catalog service
type Handler struct {
	productHandler *http.ProductHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(productHandler *http.ProductHandler, cfg *models.Config) *Handler {
	return &Handler{
		productHandler: productHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the catalog routes. The whole group sits
// behind the JWT guard; ownership of individual products is enforced in
// the usecase.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	productGroup := e.Group("/products", middleware.JWTAuthMiddleware(h.cfg.JWT))

	productGroup.POST("", h.productHandler.CreateProduct)
	productGroup.GET("", h.productHandler.ListProducts)
	productGroup.GET("/:id", h.productHandler.GetProduct)
	productGroup.PUT("/:id", h.productHandler.UpdateProduct)
	productGroup.DELETE("/:id", h.productHandler.DeleteProduct)
}
