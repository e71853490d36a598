package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/favorites/domain"
)

// ClearFavoritesCommand represents the command to empty favorites
type ClearFavoritesCommand struct {
	Owner string
}

// ClearFavoritesHandler handles clear favorites command
type ClearFavoritesHandler struct {
	repo domain.FavoritesRepository
}

// NewClearFavoritesHandler creates a new clear favorites handler
func NewClearFavoritesHandler(repo domain.FavoritesRepository) *ClearFavoritesHandler {
	return &ClearFavoritesHandler{repo: repo}
}

// Handle executes the clear favorites command
func (h *ClearFavoritesHandler) Handle(ctx context.Context, cmd ClearFavoritesCommand) (*domain.Favorites, error) {
	favorites, err := h.repo.Update(ctx, cmd.Owner, func(f *domain.Favorites) error {
		f.Clear()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear favorites: %w", err)
	}
	return favorites, nil
}
