package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/statestore"
)

const keyPrefix = "cart:"

// StateCartRepository stores each owner's cart as one JSON document
type StateCartRepository struct {
	store statestore.Store
}

func NewStateCartRepository(store statestore.Store) *StateCartRepository {
	return &StateCartRepository{store: store}
}

func (r *StateCartRepository) Load(ctx context.Context, owner string) (*domain.Cart, error) {
	raw, err := r.store.Get(ctx, keyPrefix+owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decode(raw)
}

// Update runs fn against the stored cart and saves the result; an emptied cart is deleted
func (r *StateCartRepository) Update(ctx context.Context, owner string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	var result *domain.Cart

	err := r.store.Update(ctx, keyPrefix+owner, func(current []byte) ([]byte, error) {
		cart, err := decode(current)
		if err != nil {
			return nil, err
		}
		if err := fn(cart); err != nil {
			return nil, err
		}
		result = cart

		if len(cart.Items) == 0 {
			return nil, nil
		}
		return json.Marshal(cart)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func decode(raw []byte) (*domain.Cart, error) {
	cart := &domain.Cart{}
	if raw == nil {
		return cart, nil
	}
	if err := json.Unmarshal(raw, cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}
