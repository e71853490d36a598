package brand

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// Handler serves the active brand configuration
type Handler struct {
	registry *Registry
	active   string
	metrics  *metrics.HTTPMetrics
}

func NewHandler(registry *Registry, active string, m *metrics.HTTPMetrics) *Handler {
	return &Handler{registry: registry, active: active, metrics: m}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/brand", h.metrics.Wrap("/brand", h.GetBrand)).Methods("GET")
	router.HandleFunc("/brands", h.metrics.Wrap("/brands", h.ListBrands)).Methods("GET")
}

// GetBrand handles GET /brand
// @Summary Active brand
// @Description Returns the configuration of the brand this instance serves
// @Tags Brand
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /brand [get]
func (h *Handler) GetBrand(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.registry.Get(h.active)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("brand", h.active).Msg("Failed to load brand")
		response.Error(w, http.StatusInternalServerError, "Brand unavailable")
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: cfg})
}

// ListBrands handles GET /brands
// @Summary List brands
// @Tags Brand
// @Produce json
// @Success 200 {object} object{success=bool,data=object{brands=array,active=string}}
// @Router /brands [get]
func (h *Handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.registry.List()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list brands")
		response.Error(w, http.StatusInternalServerError, "Brands unavailable")
		return
	}

	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"brands": slugs,
			"active": h.active,
		},
	})
}
