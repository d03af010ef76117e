package handlers

import (
	"errors"
	"log"
	"strconv"

	"productapi/internal/models"
	"productapi/internal/repositories"
	"productapi/internal/services"
	"productapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Each route
// runs its validation rule sets before the handler; any rule failure answers
// 400 with the accumulated errors and the handler never runs.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetProducts)
	products.Get("/:id", validation.Validate(validation.ProductID), h.HandleGetProductByID)
	products.Post("/", validation.Validate(validation.CreateProduct), h.HandleCreateProduct)
	// A replace requires the full body even though PUT carries an id; the
	// availability field is validated separately from the create rules.
	products.Put("/:id", validation.Validate(validation.CreateProduct, validation.ProductID, validation.Availability), h.HandleUpdateProduct)
	products.Patch("/:id", validation.Validate(validation.ProductID), h.HandleUpdateAvailability)
	products.Delete("/:id", validation.Validate(validation.ProductID), h.HandleDeleteProduct)
}

// CreateProductRequest is the request body for creating a product.
// Availability is not part of it: new products always start available.
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpdateProductRequest is the request body for a full replace.
type UpdateProductRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
}

// HandleGetProducts retrieves all products, most expensive first.
//
// @Summary Get a list of products
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/products [get]
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"data": products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
//
// @Summary Get a product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return h.lookupError(c, id, err)
	}
	return c.JSON(fiber.Map{
		"data": product,
	})
}

// HandleCreateProduct creates a new product from the validated body.
//
// @Summary Creates a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/products [post]
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product := models.Product{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": product,
	})
}

// HandleUpdateProduct replaces every field of an existing product.
//
// @Summary Updates a product with user input
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body UpdateProductRequest true "New product values"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [put]
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.ReplaceProduct(id, req.Name, req.Price, req.Availability)
	if err != nil {
		return h.lookupError(c, id, err)
	}
	return c.JSON(fiber.Map{
		"data": product,
	})
}

// HandleUpdateAvailability flips the availability of an existing product.
// The request body is ignored entirely; PATCH here means a fixed server-side
// toggle, not a partial update of supplied fields.
//
// @Summary Updates product availability
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [patch]
func (h *ProductHandler) HandleUpdateAvailability(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	product, err := h.service.ToggleAvailability(id)
	if err != nil {
		return h.lookupError(c, id, err)
	}
	return c.JSON(fiber.Map{
		"data": product,
	})
}

// HandleDeleteProduct permanently removes a product by its ID.
//
// @Summary Deletes a product by a given ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.service.DeleteProduct(id); err != nil {
		return h.lookupError(c, id, err)
	}
	return c.JSON(fiber.Map{
		"data": "Product deleted",
	})
}

// lookupError maps a service error to the 404 body for missing products or a
// 500 for anything the handlers do not specifically recover from. The 404
// body uses a singular "error" key, distinct from validation's "errors".
func (h *ProductHandler) lookupError(c *fiber.Ctx, id int, err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	log.Printf("Error handling product %d: %v", id, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process product",
		"error":   err.Error(),
	})
}
