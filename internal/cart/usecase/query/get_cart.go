package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// GetCartQuery represents the query to get an owner's cart
type GetCartQuery struct {
	Owner string
}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	repo domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(repo domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{repo: repo}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(ctx context.Context, query GetCartQuery) (*domain.Cart, error) {
	cart, err := h.repo.Load(ctx, query.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

// IsInCartQuery represents the query to check cart membership
type IsInCartQuery struct {
	Owner     string
	ProductID catalog.ID
}

// IsInCartHandler handles is-in-cart query
type IsInCartHandler struct {
	repo domain.CartRepository
}

// NewIsInCartHandler creates a new is-in-cart handler
func NewIsInCartHandler(repo domain.CartRepository) *IsInCartHandler {
	return &IsInCartHandler{repo: repo}
}

// Handle executes the is-in-cart query
func (h *IsInCartHandler) Handle(ctx context.Context, query IsInCartQuery) (bool, error) {
	cart, err := h.repo.Load(ctx, query.Owner)
	if err != nil {
		return false, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart.IsInCart(query.ProductID), nil
}
