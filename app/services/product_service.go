package services

import (
	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
)

// DefaultPageSize caps list endpoints (limit is clamped to 1..100,
// defaulting to 100).
const DefaultPageSize = 100

// ProductInput is the admin product-create request body.
type ProductInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,max=100"`
	ImageURL    string  `json:"image_url"   validate:"nullable,max=500"`
	Stock       int     `json:"stock"       validate:"nullable,gte=0"`
}

// ProductService exposes catalogue browsing plus the admin CRUD surface.
type ProductService struct {
	products *store.ProductStore
}

func NewProductService(products *store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// List returns products filtered by category and search, paginated.
// The limit is clamped to [1, DefaultPageSize].
func (s *ProductService) List(category, search string, skip, limit int) []models.Product {
	if limit <= 0 || limit > DefaultPageSize {
		limit = DefaultPageSize
	}
	return s.products.List(category, search, skip, limit)
}

// Get returns one product by id.
func (s *ProductService) Get(id uint) (models.Product, error) {
	p, ok := s.products.Get(id)
	if !ok {
		return models.Product{}, apperr.NotFound("Product")
	}
	return p, nil
}

// Categories returns the distinct category values.
func (s *ProductService) Categories() []string {
	return s.products.Categories()
}

// Create adds a product to the catalogue.
func (s *ProductService) Create(in ProductInput) models.Product {
	return s.products.Create(models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
	})
}

// Update merges a partial patch into an existing product. Patched
// values are range-checked here because the patch struct carries no
// validate tags (absence and zero are different things for pointers).
func (s *ProductService) Update(id uint, patch models.ProductPatch) (models.Product, error) {
	if patch.Price != nil && *patch.Price <= 0 {
		return models.Product{}, apperr.Validation("Price must be greater than zero")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return models.Product{}, apperr.Validation("Stock cannot be negative")
	}

	p, ok := s.products.Update(id, patch)
	if !ok {
		return models.Product{}, apperr.NotFound("Product")
	}
	return p, nil
}

// Delete removes a product from the catalogue. Carts and order
// snapshots referencing it keep their entries; lookups simply miss.
func (s *ProductService) Delete(id uint) error {
	if !s.products.Delete(id) {
		return apperr.NotFound("Product")
	}
	return nil
}
