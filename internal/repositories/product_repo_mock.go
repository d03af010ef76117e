package repositories

import (
	"sort"
	"sync"
	"time"

	"productapi/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[int]models.Product
	nextID   int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by price descending.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].Price > productList[j].Price
	})
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Create adds a new product, assigning the next sequential ID.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return ErrProductNotFound
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}
