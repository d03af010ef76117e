package repositories

import (
	"errors"
	"fmt"

	"productapi/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database, ordered by price
// descending.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("price DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database. The store assigns the ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when an update matches
		// nothing, so we check RowsAffected.
		return ErrProductNotFound
	}
	return nil
}

// Delete permanently removes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id int) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
