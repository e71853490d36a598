package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/kafka"
)

// UpdateQuantityCommand represents the command to set a line quantity
type UpdateQuantityCommand struct {
	Owner     string
	ProductID catalog.ID
	Quantity  int
}

// UpdateQuantityHandler handles update quantity command
type UpdateQuantityHandler struct {
	repo     domain.CartRepository
	notifier *Notifier
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(repo domain.CartRepository, notifier *Notifier) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{repo: repo, notifier: notifier}
}

// Handle executes the update quantity command; unknown products are ignored
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Cart, error) {
	changed := false
	cart, err := h.repo.Update(ctx, cmd.Owner, func(c *domain.Cart) error {
		changed = c.IsInCart(cmd.ProductID)
		c.UpdateQuantity(cmd.ProductID, cmd.Quantity)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	if changed {
		h.notifier.notify(ctx, cmd.Owner, kafka.CartActionUpdate, cmd.ProductID.String(), cmd.Quantity, cart)
	}
	return cart, nil
}
