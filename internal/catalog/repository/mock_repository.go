package repository

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/mockdata"
)

// MockProductRepository serves the catalog from static in-memory arrays
type MockProductRepository struct {
	products   []domain.Product
	categories []domain.Category
}

// NewMockProductRepository uses the built-in mock catalog
func NewMockProductRepository() *MockProductRepository {
	return NewMockProductRepositoryWith(mockdata.Products(), mockdata.Categories())
}

// NewMockProductRepositoryWith serves the given data
func NewMockProductRepositoryWith(products []domain.Product, categories []domain.Category) *MockProductRepository {
	return &MockProductRepository{products: products, categories: categories}
}

func (r *MockProductRepository) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return filter.Apply(r.products), nil
}

func (r *MockProductRepository) FindProduct(_ context.Context, id domain.ID) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *MockProductRepository) ListCategories(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}
