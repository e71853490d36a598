package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// ErrorBody mirrors the error shape of the catalog API
type ErrorBody struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// CatalogHandler serves products and categories
type CatalogHandler struct {
	listHandler       *query.ListProductsHandler
	getProductHandler *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler

	cache   *ResponseCache
	metrics *metrics.HTTPMetrics
}

// NewCatalogHandler creates a catalog handler; cache may be nil
func NewCatalogHandler(
	listHandler *query.ListProductsHandler,
	getProductHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
	cache *ResponseCache,
	m *metrics.HTTPMetrics,
) *CatalogHandler {
	return &CatalogHandler{
		listHandler:       listHandler,
		getProductHandler: getProductHandler,
		categoriesHandler: categoriesHandler,
		cache:             cache,
		metrics:           m,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.Handle("/products", h.route("/products", h.ListProducts)).Methods("GET")
	router.Handle("/products/{id}", h.route("/products/{id}", h.GetProduct)).Methods("GET")
	router.Handle("/categories", h.route("/categories", h.ListCategories)).Methods("GET")
}

func (h *CatalogHandler) route(endpoint string, next http.HandlerFunc) http.Handler {
	var handler http.Handler = h.metrics.Wrap(endpoint, next)
	if h.cache != nil {
		handler = h.cache.Middleware(handler)
	}
	return handler
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	resp, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondError(w, http.StatusBadGateway, "Catalog unavailable")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: domain.ID(id)})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error(r.Context()).Err(err).Str("product_id", id).Msg("Failed to get product")
		respondError(w, http.StatusBadGateway, "Catalog unavailable")
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.categoriesHandler.Handle(r.Context(), query.ListCategoriesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondError(w, http.StatusBadGateway, "Catalog unavailable")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func respondError(w http.ResponseWriter, status int, message string) {
	response.JSON(w, status, ErrorBody{StatusCode: status, StatusMessage: message})
}
