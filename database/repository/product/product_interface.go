package productRepo

import "mercato/models"

// ProductRepository defines methods for catalog data access.
type ProductRepository interface {
	// GetByID retrieves a product by its unique ID.
	GetByID(id string) (*models.Product, error)
	// GetAll retrieves all products.
	GetAll() ([]models.Product, error)
	// Create inserts a new product record.
	Create(product *models.Product) error
	// Update modifies an existing product record.
	Update(product *models.Product) error
	// Delete removes a product record by its ID.
	Delete(id string) error
	// DecrementStock atomically reduces stock for a product; fails when the
	// remaining stock is insufficient.
	DecrementStock(id string, quantity int) error
	// IncrementStock returns previously reserved units to a product's stock.
	IncrementStock(id string, quantity int) error
	// Count returns the total number of products.
	Count() (int64, error)
	// AverageRating computes the mean rating across rated products. Returns
	// zero when no product has been rated.
	AverageRating() (float64, error)
}
