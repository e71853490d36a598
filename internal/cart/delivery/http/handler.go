package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/auth"
	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// CartHandler handles HTTP requests for the session cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler    *command.AddItemHandler
	removeHandler *command.RemoveItemHandler
	updateHandler *command.UpdateQuantityHandler
	clearHandler  *command.ClearCartHandler

	// Query handlers
	getHandler      *query.GetCartHandler
	isInCartHandler *query.IsInCartHandler

	metrics *metrics.HTTPMetrics
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	clearHandler *command.ClearCartHandler,
	getHandler *query.GetCartHandler,
	isInCartHandler *query.IsInCartHandler,
	m *metrics.HTTPMetrics,
) *CartHandler {
	return &CartHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		updateHandler:   updateHandler,
		clearHandler:    clearHandler,
		getHandler:      getHandler,
		isInCartHandler: isInCartHandler,
		metrics:         m,
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cart", h.metrics.Wrap("/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/cart", h.metrics.Wrap("/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/cart/items", h.metrics.Wrap("/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/cart/items/{id}", h.metrics.Wrap("/cart/items/{id}", h.IsInCart)).Methods("GET")
	router.HandleFunc("/cart/items/{id}", h.metrics.Wrap("/cart/items/{id}", h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/cart/items/{id}", h.metrics.Wrap("/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	cart, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{Owner: owner})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respondCart(w, http.StatusOK, "", cart)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID catalog.ID `json:"productId"`
		Quantity  *int       `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == "" {
		response.Error(w, http.StatusBadRequest, "productId is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		Owner:     owner,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respondCart(w, http.StatusOK, "Item added to cart", cart)
}

// UpdateQuantity handles PATCH /cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		response.Error(w, http.StatusBadRequest, "quantity is required")
		return
	}

	cart, err := h.updateHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		Owner:     owner,
		ProductID: catalog.ID(mux.Vars(r)["id"]),
		Quantity:  *req.Quantity,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respondCart(w, http.StatusOK, "Cart updated", cart)
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	cart, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		Owner:     owner,
		ProductID: catalog.ID(mux.Vars(r)["id"]),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respondCart(w, http.StatusOK, "Item removed from cart", cart)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	cart, err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{Owner: owner})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respondCart(w, http.StatusOK, "Cart cleared", cart)
}

// IsInCart handles GET /cart/items/{id}
func (h *CartHandler) IsInCart(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireOwner(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	inCart, err := h.isInCartHandler.Handle(r.Context(), query.IsInCartQuery{Owner: owner, ProductID: catalog.ID(id)})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"productId": id,
			"inCart":    inCart,
		},
	})
}

func (h *CartHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	default:
		logger.Error(r.Context()).Err(err).Msg("Cart operation failed")
		response.Error(w, http.StatusInternalServerError, "Cart operation failed")
	}
}

func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Session required")
		return "", false
	}
	return owner, true
}

func respondCart(w http.ResponseWriter, status int, message string, cart *domain.Cart) {
	response.JSON(w, status, response.Response{
		Success: true,
		Message: message,
		Data:    cart.Summary(),
	})
}
