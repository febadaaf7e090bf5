package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	catalogSvc "mercato/services/catalog"
	"mercato/services/storage"
	"mercato/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles product image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Catalog    catalogSvc.CatalogService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, catalog catalogSvc.CatalogService) *StorageHandler {
	return &StorageHandler{
		StorageSvc: svc,
		Catalog:    catalog,
	}
}

// UploadProductImageHandler handles POST /api/admin/products/:id/image.
// The uploaded file is staged to a temp path, pushed to Cloudinary and its
// public URL stored on the product.
func (h *StorageHandler) UploadProductImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	productID := c.Param("id")

	if h.StorageSvc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Image storage not configured", "")
		return
	}

	// Resolve the product first so a bad ID never triggers an upload, and
	// remember the current image for post-replacement cleanup.
	existing, err := h.Catalog.GetProductByID(productID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}
	previousImageURL := existing.ImageURL

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "products")
	if err != nil {
		logger.Error("Image upload failed", zap.String("product", productID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload image", err.Error())
		return
	}

	imageURL, err := h.StorageSvc.GetDownloadURL(publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to construct image URL", err.Error())
		return
	}

	product, err := h.Catalog.SetProductImage(productID, imageURL)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Product not found", err.Error())
		return
	}

	// Remove the replaced asset, best effort: the product already points at
	// the new image, a stale file in storage only costs space.
	if oldID := storage.PublicIDFromURL(previousImageURL); oldID != "" {
		if err := h.StorageSvc.DeleteFile(c, oldID); err != nil {
			logger.Warn("Failed to delete replaced product image",
				zap.String("product", productID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"product": product,
	})
}
