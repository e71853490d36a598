package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/auth"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/internal/favorites/usecase/command"
	"github.com/tair/storefront/internal/favorites/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// FavoritesHandler handles HTTP requests for the session favorites
type FavoritesHandler struct {
	toggleHandler *command.ToggleFavoriteHandler
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	clearHandler  *command.ClearFavoritesHandler

	getHandler        *query.GetFavoritesHandler
	isFavoriteHandler *query.IsFavoriteHandler

	metrics *metrics.HTTPMetrics
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(
	toggleHandler *command.ToggleFavoriteHandler,
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	clearHandler *command.ClearFavoritesHandler,
	getHandler *query.GetFavoritesHandler,
	isFavoriteHandler *query.IsFavoriteHandler,
	m *metrics.HTTPMetrics,
) *FavoritesHandler {
	return &FavoritesHandler{
		toggleHandler:     toggleHandler,
		addHandler:        addHandler,
		removeHandler:     removeHandler,
		clearHandler:      clearHandler,
		getHandler:        getHandler,
		isFavoriteHandler: isFavoriteHandler,
		metrics:           m,
	}
}

func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/favorites", h.metrics.Wrap("/favorites", h.List)).Methods("GET")
	router.HandleFunc("/favorites", h.metrics.Wrap("/favorites", h.Clear)).Methods("DELETE")
	router.HandleFunc("/favorites/{id}/toggle", h.metrics.Wrap("/favorites/{id}/toggle", h.Toggle)).Methods("POST")
	router.HandleFunc("/favorites/{id}", h.metrics.Wrap("/favorites/{id}", h.IsFavorite)).Methods("GET")
	router.HandleFunc("/favorites/{id}", h.metrics.Wrap("/favorites/{id}", h.Add)).Methods("PUT")
	router.HandleFunc("/favorites/{id}", h.metrics.Wrap("/favorites/{id}", h.Remove)).Methods("DELETE")
}

// List handles GET /favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	favorites, err := h.getHandler.Handle(r.Context(), query.GetFavoritesQuery{Owner: owner})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondFavorites(w, "", favorites)
}

// Toggle handles POST /favorites/{id}/toggle
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	result, err := h.toggleHandler.Handle(r.Context(), command.ToggleFavoriteCommand{Owner: owner, ProductID: catalog.ID(id)})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view := result.Favorites.View()
	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"ids":        view.IDs,
			"count":      view.Count,
			"productId":  id,
			"isFavorite": result.IsFavorite,
		},
	})
}

// Add handles PUT /favorites/{id}
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	favorites, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{Owner: owner, ProductID: catalog.ID(mux.Vars(r)["id"])})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondFavorites(w, "Added to favorites", favorites)
}

// Remove handles DELETE /favorites/{id}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	favorites, err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{Owner: owner, ProductID: catalog.ID(mux.Vars(r)["id"])})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondFavorites(w, "Removed from favorites", favorites)
}

// Clear handles DELETE /favorites
func (h *FavoritesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	favorites, err := h.clearHandler.Handle(r.Context(), command.ClearFavoritesCommand{Owner: owner})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondFavorites(w, "Favorites cleared", favorites)
}

// IsFavorite handles GET /favorites/{id}
func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	isFavorite, err := h.isFavoriteHandler.Handle(r.Context(), query.IsFavoriteQuery{Owner: owner, ProductID: catalog.ID(id)})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"productId":  id,
			"isFavorite": isFavorite,
		},
	})
}

func (h *FavoritesHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidProductID) {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Error(r.Context()).Err(err).Msg("Favorites operation failed")
	response.Error(w, http.StatusInternalServerError, "Favorites operation failed")
}

func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Session required")
		return "", false
	}
	return owner, true
}

func respondFavorites(w http.ResponseWriter, message string, favorites *domain.Favorites) {
	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Message: message,
		Data:    favorites.View(),
	})
}
