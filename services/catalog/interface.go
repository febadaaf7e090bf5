package catalog

import (
	productRepo "mercato/database/repository/product"
	"mercato/models"
)

type CatalogService interface {
	ListProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	CreateProduct(product models.Product) (*models.Product, error)
	UpdateProduct(product models.Product) (*models.Product, error)
	DeleteProduct(id string) error
	SetProductImage(id, imageURL string) (*models.Product, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo productRepo.ProductRepository
}
