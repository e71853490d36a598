package domain

import (
	"encoding/json"
	"fmt"
)

// Wire shapes with pointer fields so that missing required keys can be told apart from zero values.
type wireProduct struct {
	ID    *ID      `json:"id"`
	Brand *string  `json:"brand"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type wireCategory struct {
	ID   *ID     `json:"id"`
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// ProductListResponse is the body of GET /products
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// CategoryListResponse is the body of GET /categories
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
}

// DecodeProduct decodes and validates a single product document
func DecodeProduct(data []byte) (Product, error) {
	var required wireProduct
	if err := json.Unmarshal(data, &required); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	switch {
	case required.ID == nil:
		return Product{}, fmt.Errorf("%w: product id is required", ErrInvalidPayload)
	case required.Brand == nil:
		return Product{}, fmt.Errorf("%w: product brand is required", ErrInvalidPayload)
	case required.Name == nil:
		return Product{}, fmt.Errorf("%w: product name is required", ErrInvalidPayload)
	case required.Price == nil:
		return Product{}, fmt.Errorf("%w: product price is required", ErrInvalidPayload)
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	for _, badge := range product.Badges {
		if !badge.Color.Valid() {
			return Product{}, fmt.Errorf("%w: invalid badge color %q", ErrInvalidPayload, badge.Color)
		}
	}
	return product, nil
}

// DecodeCategory decodes and validates a single category document
func DecodeCategory(data []byte) (Category, error) {
	var required wireCategory
	if err := json.Unmarshal(data, &required); err != nil {
		return Category{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if required.ID == nil || required.Name == nil || required.Slug == nil {
		return Category{}, fmt.Errorf("%w: category requires id, name and slug", ErrInvalidPayload)
	}

	var category Category
	if err := json.Unmarshal(data, &category); err != nil {
		return Category{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return category, nil
}

// DecodeProductList decodes and validates a product list response
func DecodeProductList(data []byte) (*ProductListResponse, error) {
	var raw struct {
		Products []json.RawMessage `json:"products"`
		Total    *float64          `json:"total"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if raw.Products == nil || raw.Total == nil {
		return nil, fmt.Errorf("%w: product list requires products and total", ErrInvalidPayload)
	}

	resp := &ProductListResponse{
		Products: make([]Product, 0, len(raw.Products)),
		Total:    int(*raw.Total),
	}
	for i, item := range raw.Products {
		product, err := DecodeProduct(item)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		resp.Products = append(resp.Products, product)
	}
	return resp, nil
}

// DecodeCategoryList decodes and validates a category list response
func DecodeCategoryList(data []byte) (*CategoryListResponse, error) {
	var raw struct {
		Categories []json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if raw.Categories == nil {
		return nil, fmt.Errorf("%w: category list requires categories", ErrInvalidPayload)
	}

	resp := &CategoryListResponse{Categories: make([]Category, 0, len(raw.Categories))}
	for i, item := range raw.Categories {
		category, err := DecodeCategory(item)
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		resp.Categories = append(resp.Categories, category)
	}
	return resp, nil
}
