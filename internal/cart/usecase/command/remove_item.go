package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/kafka"
)

// RemoveItemCommand represents the command to remove a product from a cart
type RemoveItemCommand struct {
	Owner     string
	ProductID catalog.ID
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	repo     domain.CartRepository
	notifier *Notifier
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.CartRepository, notifier *Notifier) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo, notifier: notifier}
}

// Handle executes the remove item command; removing an absent product is a no-op
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	changed := false
	cart, err := h.repo.Update(ctx, cmd.Owner, func(c *domain.Cart) error {
		changed = c.IsInCart(cmd.ProductID)
		c.RemoveItem(cmd.ProductID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	if changed {
		h.notifier.notify(ctx, cmd.Owner, kafka.CartActionRemove, cmd.ProductID.String(), 0, cart)
	}
	return cart, nil
}
