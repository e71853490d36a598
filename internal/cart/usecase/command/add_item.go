package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/kafka"
)

// AddItemCommand represents the command to add a product to a cart
type AddItemCommand struct {
	Owner     string
	ProductID catalog.ID
	Quantity  int
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	repo     domain.CartRepository
	products catalog.ProductRepository
	notifier *Notifier
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.CartRepository, products catalog.ProductRepository, notifier *Notifier) *AddItemHandler {
	return &AddItemHandler{repo: repo, products: products, notifier: notifier}
}

// Handle resolves the product through the catalog and adds it to the cart
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := h.products.FindProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", cmd.ProductID, err)
	}

	cart, err := h.repo.Update(ctx, cmd.Owner, func(c *domain.Cart) error {
		c.AddItem(*product, cmd.Quantity)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	h.notifier.notify(ctx, cmd.Owner, kafka.CartActionAdd, product.ID.String(), cmd.Quantity, cart)
	return cart, nil
}
