package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/statestore"
)

func TestGetCartAndIsInCart(t *testing.T) {
	repo := repository.NewStateCartRepository(statestore.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Update(ctx, "o", func(c *domain.Cart) error {
		c.AddItem(catalog.Product{ID: "42", Price: 2}, 3)
		return nil
	})
	require.NoError(t, err)

	cart, err := NewGetCartHandler(repo).Handle(ctx, GetCartQuery{Owner: "o"})
	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems())

	in, err := NewIsInCartHandler(repo).Handle(ctx, IsInCartQuery{Owner: "o", ProductID: "42"})
	require.NoError(t, err)
	assert.True(t, in)

	in, err = NewIsInCartHandler(repo).Handle(ctx, IsInCartQuery{Owner: "someone-else", ProductID: "42"})
	require.NoError(t, err)
	assert.False(t, in)
}
