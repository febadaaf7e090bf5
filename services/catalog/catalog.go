package catalog

import (
	"fmt"

	"mercato/models"
	"mercato/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListProducts returns the full catalog.
func (s *DefaultCatalogService) ListProducts() ([]models.Product, error) {
	products, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProductByID retrieves a single product.
func (s *DefaultCatalogService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return product, nil
}

// CreateProduct adds a new catalog item.
func (s *DefaultCatalogService) CreateProduct(product models.Product) (*models.Product, error) {
	logger := utils.GetLogger()

	if product.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	product.ID = uuid.New().String()
	if err := s.Repo.Create(&product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("Product created", zap.String("id", product.ID), zap.String("name", product.Name))
	return &product, nil
}

// UpdateProduct replaces an existing catalog item.
func (s *DefaultCatalogService) UpdateProduct(product models.Product) (*models.Product, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if err := s.Repo.Update(&product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return &product, nil
}

// DeleteProduct removes a catalog item.
func (s *DefaultCatalogService) DeleteProduct(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// SetProductImage stores the uploaded image URL on the product.
func (s *DefaultCatalogService) SetProductImage(id, imageURL string) (*models.Product, error) {
	product, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	product.ImageURL = imageURL
	if err := s.Repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return product, nil
}
