package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/kafka"
)

// ClearCartCommand represents the command to empty a cart
type ClearCartCommand struct {
	Owner string
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	repo     domain.CartRepository
	notifier *Notifier
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(repo domain.CartRepository, notifier *Notifier) *ClearCartHandler {
	return &ClearCartHandler{repo: repo, notifier: notifier}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) (*domain.Cart, error) {
	cart, err := h.repo.Update(ctx, cmd.Owner, func(c *domain.Cart) error {
		c.Clear()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	h.notifier.notify(ctx, cmd.Owner, kafka.CartActionClear, "", 0, cart)
	return cart, nil
}
