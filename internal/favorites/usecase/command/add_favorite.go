package command

import (
	"context"
	"fmt"

	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
)

// AddFavoriteCommand represents the command to add a product to favorites
type AddFavoriteCommand struct {
	Owner     string
	ProductID catalog.ID
}

// AddFavoriteHandler handles add favorite command
type AddFavoriteHandler struct {
	repo domain.FavoritesRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoritesRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle executes the add favorite command; adding twice keeps one entry
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorites, error) {
	if cmd.ProductID == "" {
		return nil, domain.ErrInvalidProductID
	}

	favorites, err := h.repo.Update(ctx, cmd.Owner, func(f *domain.Favorites) error {
		f.Add(cmd.ProductID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return favorites, nil
}
