package query

import (
	"context"
	"fmt"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// GetFavoritesQuery represents the query to list an owner's favorites
type GetFavoritesQuery struct {
	Owner string
}

// GetFavoritesHandler handles get favorites query
type GetFavoritesHandler struct {
	repo domain.FavoritesRepository
}

// NewGetFavoritesHandler creates a new get favorites handler
func NewGetFavoritesHandler(repo domain.FavoritesRepository) *GetFavoritesHandler {
	return &GetFavoritesHandler{repo: repo}
}

// Handle executes the get favorites query
func (h *GetFavoritesHandler) Handle(ctx context.Context, query GetFavoritesQuery) (*domain.Favorites, error) {
	favorites, err := h.repo.Load(ctx, query.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return favorites, nil
}

// IsFavoriteQuery represents the query to check one product
type IsFavoriteQuery struct {
	Owner     string
	ProductID catalog.ID
}

// IsFavoriteHandler handles is-favorite query
type IsFavoriteHandler struct {
	repo domain.FavoritesRepository
}

// NewIsFavoriteHandler creates a new is-favorite handler
func NewIsFavoriteHandler(repo domain.FavoritesRepository) *IsFavoriteHandler {
	return &IsFavoriteHandler{repo: repo}
}

// Handle executes the is-favorite query
func (h *IsFavoriteHandler) Handle(ctx context.Context, query IsFavoriteQuery) (bool, error) {
	favorites, err := h.repo.Load(ctx, query.Owner)
	if err != nil {
		return false, fmt.Errorf("failed to get favorites: %w", err)
	}
	return favorites.IsFavorite(query.ProductID), nil
}
