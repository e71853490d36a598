package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/statestore"
)

func TestStateCartRepositoryRoundTrip(t *testing.T) {
	store := statestore.NewMemoryStore()
	repo := NewStateCartRepository(store)
	ctx := context.Background()

	cart, err := repo.Load(ctx, "session:a")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = repo.Update(ctx, "session:a", func(c *domain.Cart) error {
		c.AddItem(catalog.Product{ID: "7", Brand: "Mustela", Name: "Gel", Price: 9.5}, 2)
		return nil
	})
	require.NoError(t, err)

	cart, err = repo.Load(ctx, "session:a")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	other, err := repo.Load(ctx, "session:b")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestEmptiedCartIsDeleted(t *testing.T) {
	store := statestore.NewMemoryStore()
	repo := NewStateCartRepository(store)
	ctx := context.Background()

	_, err := repo.Update(ctx, "u", func(c *domain.Cart) error {
		c.AddItem(catalog.Product{ID: "1", Price: 1}, 1)
		return nil
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "u", func(c *domain.Cart) error {
		c.Clear()
		return nil
	})
	require.NoError(t, err)

	raw, err := store.Get(ctx, "cart:u")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestUpdateErrorIsPropagated(t *testing.T) {
	repo := NewStateCartRepository(statestore.NewMemoryStore())
	boom := errors.New("boom")

	_, err := repo.Update(context.Background(), "u", func(*domain.Cart) error { return boom })
	assert.ErrorIs(t, err, boom)
}
