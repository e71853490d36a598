package command

import (
	"context"
	"fmt"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// ToggleFavoriteCommand represents the command to flip a product's favorite state
type ToggleFavoriteCommand struct {
	Owner     string
	ProductID catalog.ID
}

// ToggleResult reports the favorites after a toggle and whether the product is now a favorite
type ToggleResult struct {
	Favorites  *domain.Favorites
	IsFavorite bool
}

// ToggleFavoriteHandler handles toggle favorite command
type ToggleFavoriteHandler struct {
	repo domain.FavoritesRepository
}

// NewToggleFavoriteHandler creates a new toggle favorite handler
func NewToggleFavoriteHandler(repo domain.FavoritesRepository) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{repo: repo}
}

// Handle executes the toggle favorite command
func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (*ToggleResult, error) {
	if cmd.ProductID == "" {
		return nil, domain.ErrInvalidProductID
	}

	var now bool
	favorites, err := h.repo.Update(ctx, cmd.Owner, func(f *domain.Favorites) error {
		now = f.Toggle(cmd.ProductID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	return &ToggleResult{Favorites: favorites, IsFavorite: now}, nil
}
