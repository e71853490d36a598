package storefront

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/auth"
	"github.com/tair/storefront/internal/brand"
	cartHTTP "github.com/tair/storefront/internal/cart/delivery/http"
	catalogHTTP "github.com/tair/storefront/internal/catalog/delivery/http"
	catalogDomain "github.com/tair/storefront/internal/catalog/domain"
	favoritesHTTP "github.com/tair/storefront/internal/favorites/delivery/http"
	navigationHTTP "github.com/tair/storefront/internal/navigation/delivery/http"
	"github.com/tair/storefront/internal/shell"
	pkgauth "github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/response"
)

// Server holds every HTTP handler of the storefront
type Server struct {
	Catalog    *catalogHTTP.CatalogHandler
	Cart       *cartHTTP.CartHandler
	Favorites  *favoritesHTTP.FavoritesHandler
	Navigation *navigationHTTP.NavigationHandler
	Brand      *brand.Handler
	Auth       *auth.Handler
	Shell      *shell.Handler

	ActiveBrand *brand.Config
	Products    catalogDomain.ProductRepository
	Cache       *catalogHTTP.ResponseCache
	Tokens      *pkgauth.TokenManager
	Setup       *shell.SetupCoordinator
}

// RegisterRoutes mounts all modules on router. Cart, favorites and auth routes resolve the session owner.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", s.Health).Methods("GET")

	s.Catalog.RegisterRoutes(router)
	s.Brand.RegisterRoutes(router)
	s.Navigation.RegisterRoutes(router)

	stateful := router.NewRoute().Subrouter()
	stateful.Use(auth.SessionMiddleware(s.Tokens))
	s.Cart.RegisterRoutes(stateful)
	s.Favorites.RegisterRoutes(stateful)
	s.Auth.RegisterRoutes(stateful)

	s.Shell.RegisterRoutes(router)
}

// Health handles GET /health
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"status": "healthy",
			"brand":  s.ActiveBrand.Slug,
			"setup":  s.Setup.State(),
		},
	})
}

// Warmup checks that the catalog answers, then completes the backend splashscreen task
func (s *Server) Warmup(ctx context.Context) error {
	categories, err := s.Products.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("catalog warmup failed: %w", err)
	}
	logger.Info(ctx).Int("categories", len(categories)).Msg("Catalog warmed up")

	if _, err := s.Setup.Complete(ctx, shell.TaskBackend); err != nil {
		return err
	}
	return nil
}

// InvalidateCatalog drops cached catalog responses; a nil cache is a no-op
func (s *Server) InvalidateCatalog(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	removed, err := s.Cache.Invalidate(ctx)
	if err != nil {
		return err
	}
	logger.Info(ctx).Int("keys", removed).Msg("Catalog cache invalidated")
	return nil
}
