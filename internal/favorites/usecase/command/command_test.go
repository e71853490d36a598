package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/internal/favorites/repository"
	"github.com/tair/storefront/internal/statestore"
)

type failingRepository struct{}

func (failingRepository) Load(context.Context, string) (*domain.Favorites, error) {
	return nil, errors.New("store down")
}

func (failingRepository) Update(context.Context, string, func(*domain.Favorites) error) (*domain.Favorites, error) {
	return nil, errors.New("store down")
}

func TestToggleFavorite(t *testing.T) {
	repo := repository.NewStateFavoritesRepository(statestore.NewMemoryStore())
	toggle := NewToggleFavoriteHandler(repo)
	ctx := context.Background()

	result, err := toggle.Handle(ctx, ToggleFavoriteCommand{Owner: "session:a", ProductID: "3"})
	require.NoError(t, err)
	assert.True(t, result.IsFavorite)
	assert.Equal(t, []catalog.ID{"3"}, result.Favorites.IDs)

	result, err = toggle.Handle(ctx, ToggleFavoriteCommand{Owner: "session:a", ProductID: "3"})
	require.NoError(t, err)
	assert.False(t, result.IsFavorite)
	assert.Zero(t, result.Favorites.Count())

	_, err = toggle.Handle(ctx, ToggleFavoriteCommand{Owner: "session:a"})
	assert.ErrorIs(t, err, domain.ErrInvalidProductID)
}

func TestAddRemoveClearFavorites(t *testing.T) {
	repo := repository.NewStateFavoritesRepository(statestore.NewMemoryStore())
	add := NewAddFavoriteHandler(repo)
	remove := NewRemoveFavoriteHandler(repo)
	clearAll := NewClearFavoritesHandler(repo)
	ctx := context.Background()

	for _, id := range []catalog.ID{"1", "2", "1", "5"} {
		_, err := add.Handle(ctx, AddFavoriteCommand{Owner: "user:7", ProductID: id})
		require.NoError(t, err)
	}

	favorites, err := repo.Load(ctx, "user:7")
	require.NoError(t, err)
	assert.Equal(t, []catalog.ID{"1", "2", "5"}, favorites.IDs)

	favorites, err = remove.Handle(ctx, RemoveFavoriteCommand{Owner: "user:7", ProductID: "2"})
	require.NoError(t, err)
	assert.Equal(t, []catalog.ID{"1", "5"}, favorites.IDs)

	// other owners are untouched
	other, err := repo.Load(ctx, "user:8")
	require.NoError(t, err)
	assert.Zero(t, other.Count())

	favorites, err = clearAll.Handle(ctx, ClearFavoritesCommand{Owner: "user:7"})
	require.NoError(t, err)
	assert.Zero(t, favorites.Count())

	_, err = add.Handle(ctx, AddFavoriteCommand{Owner: "user:7"})
	assert.ErrorIs(t, err, domain.ErrInvalidProductID)
}

func TestFavoritesCommandsWrapStoreErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewToggleFavoriteHandler(failingRepository{}).Handle(ctx, ToggleFavoriteCommand{Owner: "o", ProductID: "1"})
	assert.ErrorContains(t, err, "failed to toggle favorite")

	_, err = NewClearFavoritesHandler(failingRepository{}).Handle(ctx, ClearFavoritesCommand{Owner: "o"})
	assert.ErrorContains(t, err, "failed to clear favorites")
}
