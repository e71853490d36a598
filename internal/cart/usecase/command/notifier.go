package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// EventPublisher is the subset of the Kafka publisher the cart needs
type EventPublisher interface {
	PublishCartUpdated(ctx context.Context, event kafka.CartUpdatedEvent) error
}

// Notifier publishes cart.updated events; publish failures never fail the mutation
type Notifier struct {
	publisher EventPublisher
	brand     string
}

func NewNotifier(publisher EventPublisher, brand string) *Notifier {
	return &Notifier{publisher: publisher, brand: brand}
}

func (n *Notifier) notify(ctx context.Context, owner, action, productID string, quantity int, cart *domain.Cart) {
	if n == nil || n.publisher == nil {
		return
	}

	event := kafka.CartUpdatedEvent{
		Brand:      n.brand,
		Owner:      owner,
		Action:     action,
		ProductID:  productID,
		Quantity:   quantity,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
	if err := n.publisher.PublishCartUpdated(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("action", action).Msg("Failed to publish cart event")
	}
}
