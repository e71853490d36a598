package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/internal/statestore"
)

const keyPrefix = "favorites:"

// StateFavoritesRepository stores each owner's favorites as one JSON document
type StateFavoritesRepository struct {
	store statestore.Store
}

func NewStateFavoritesRepository(store statestore.Store) *StateFavoritesRepository {
	return &StateFavoritesRepository{store: store}
}

func (r *StateFavoritesRepository) Load(ctx context.Context, owner string) (*domain.Favorites, error) {
	raw, err := r.store.Get(ctx, keyPrefix+owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return decode(raw)
}

func (r *StateFavoritesRepository) Update(ctx context.Context, owner string, fn func(*domain.Favorites) error) (*domain.Favorites, error) {
	var result *domain.Favorites

	err := r.store.Update(ctx, keyPrefix+owner, func(current []byte) ([]byte, error) {
		favorites, err := decode(current)
		if err != nil {
			return nil, err
		}
		if err := fn(favorites); err != nil {
			return nil, err
		}
		result = favorites

		if favorites.Count() == 0 {
			return nil, nil
		}
		return json.Marshal(favorites)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func decode(raw []byte) (*domain.Favorites, error) {
	favorites := &domain.Favorites{}
	if raw == nil {
		return favorites, nil
	}
	if err := json.Unmarshal(raw, favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favorites, nil
}
