package repositories

import (
	"errors"

	"productapi/internal/models"
)

// ErrProductNotFound is returned by lookups and mutations when no record
// matches the given id. Handlers map it to a 404 response.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// GetAll returns products ordered by price, highest first.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}
