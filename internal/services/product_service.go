package services

import (
	"log"

	"productapi/internal/models"
	"productapi/internal/repositories"
)

// EventPublisher publishes product lifecycle events. It is satisfied by
// rabbitmq.Client; a nil publisher disables publishing.
type EventPublisher interface {
	PublishProductEvent(event string, data interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case lifecycle events are skipped.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products, ordered by price descending.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. The store assigns the ID and
// availability always starts out true, whatever the request carried.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Availability = true
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// ReplaceProduct overwrites every field of an existing product with the
// given values. Returns repositories.ErrProductNotFound when the id does not
// match a record.
func (s *ProductService) ReplaceProduct(id int, name string, price float64, availability bool) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	product.Availability = availability
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publish("product.updated", product)
	return product, nil
}

// ToggleAvailability flips the availability of an existing product to its
// logical negation. The request body is never consulted for this operation.
func (s *ProductService) ToggleAvailability(id int) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Availability = !product.Availability
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publish("product.updated", product)
	return product, nil
}

// DeleteProduct permanently removes a product by its ID.
func (s *ProductService) DeleteProduct(id int) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publish("product.deleted", product)
	return nil
}

// publish sends a lifecycle event on a best-effort basis. A failed or
// skipped publish never fails the request that triggered it.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, product); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
