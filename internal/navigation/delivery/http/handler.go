package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/brand"
	"github.com/tair/storefront/internal/navigation"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// NavigationHandler resolves the active brand's menus for a path and locale
type NavigationHandler struct {
	registry *brand.Registry
	active   string
	metrics  *metrics.HTTPMetrics
}

func NewNavigationHandler(registry *brand.Registry, active string, m *metrics.HTTPMetrics) *NavigationHandler {
	return &NavigationHandler{registry: registry, active: active, metrics: m}
}

func (h *NavigationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/navigation", h.metrics.Wrap("/navigation", h.GetNavigation)).Methods("GET")
}

// GetNavigation handles GET /navigation?path=&locale=&menu=
// @Summary Resolve navigation
// @Description Translates the brand's nav items, localizes their routes and flags the one whose route equals path
// @Tags Navigation
// @Produce json
// @Param path query string false "Current path" default(/)
// @Param locale query string false "Locale code, defaults to the brand default"
// @Param menu query string false "nav or account" default(nav)
// @Success 200 {object} object{success=bool,data=object{locale=string,items=array}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /navigation [get]
func (h *NavigationHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.registry.Get(h.active)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("brand", h.active).Msg("Failed to load brand")
		response.Error(w, http.StatusInternalServerError, "Brand unavailable")
		return
	}

	q := r.URL.Query()

	currentPath := q.Get("path")
	if currentPath == "" {
		currentPath = "/"
	}

	locale := q.Get("locale")
	if locale == "" {
		locale = cfg.DefaultLocale()
	}
	if !cfg.HasLocale(locale) {
		response.Error(w, http.StatusBadRequest, "Unsupported locale")
		return
	}

	var items []navigation.Item
	switch q.Get("menu") {
	case "", "nav":
		items = cfg.Nav.Items
	case "account":
		items = cfg.Account.MenuItems
	default:
		response.Error(w, http.StatusBadRequest, "Unknown menu")
		return
	}

	resolved := navigation.BuildNavItems(
		items,
		currentPath,
		cfg.Translator(locale),
		navigation.PrefixExceptDefault(locale, cfg.DefaultLocale()),
	)

	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"locale": locale,
			"items":  resolved,
		},
	})
}
