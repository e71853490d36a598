package command

import (
	"context"
	"fmt"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// RemoveFavoriteCommand represents the command to drop a product from favorites
type RemoveFavoriteCommand struct {
	Owner     string
	ProductID catalog.ID
}

// RemoveFavoriteHandler handles remove favorite command
type RemoveFavoriteHandler struct {
	repo domain.FavoritesRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoritesRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) (*domain.Favorites, error) {
	favorites, err := h.repo.Update(ctx, cmd.Owner, func(f *domain.Favorites) error {
		f.Remove(cmd.ProductID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return favorites, nil
}
