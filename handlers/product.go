package handlers

import (
	"net/http"

	"mercato/models"
	catalogSvc "mercato/services/catalog"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler serves catalog endpoints. Listing and reading are public;
// mutations sit behind the admin middleware at the route level.
type ProductHandler struct {
	Service catalogSvc.CatalogService
}

// NewProductHandler creates a ProductHandler with the given service.
func NewProductHandler(svc catalogSvc.CatalogService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

// ListProductsHandler handles GET /api/products.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Service.ListProducts()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductHandler handles GET /api/products/:id.
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	id := c.Param("id")
	product, err := h.Service.GetProductByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProductHandler handles POST /api/admin/products.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid product payload", err.Error())
		return
	}

	created, err := h.Service.CreateProduct(product)
	if err != nil {
		logger.Error("Product creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Product creation failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProductHandler handles PUT /api/admin/products/:id.
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid product payload", err.Error())
		return
	}
	product.ID = c.Param("id")

	updated, err := h.Service.UpdateProduct(product)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Product update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProductHandler handles DELETE /api/admin/products/:id.
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteProduct(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Product deletion failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
