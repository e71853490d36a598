// Package storefront assembles the storefront HTTP service from its modules.
package storefront

import (
	"context"
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/auth"
	"github.com/tair/storefront/internal/brand"
	cartHTTP "github.com/tair/storefront/internal/cart/delivery/http"
	cartDomain "github.com/tair/storefront/internal/cart/domain"
	cartRepository "github.com/tair/storefront/internal/cart/repository"
	cartCommand "github.com/tair/storefront/internal/cart/usecase/command"
	cartQuery "github.com/tair/storefront/internal/cart/usecase/query"
	catalogHTTP "github.com/tair/storefront/internal/catalog/delivery/http"
	catalogDomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/mockdata"
	catalogRepository "github.com/tair/storefront/internal/catalog/repository"
	catalogQuery "github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/internal/config"
	favoritesHTTP "github.com/tair/storefront/internal/favorites/delivery/http"
	favoritesDomain "github.com/tair/storefront/internal/favorites/domain"
	favoritesRepository "github.com/tair/storefront/internal/favorites/repository"
	favoritesCommand "github.com/tair/storefront/internal/favorites/usecase/command"
	favoritesQuery "github.com/tair/storefront/internal/favorites/usecase/query"
	navigationHTTP "github.com/tair/storefront/internal/navigation/delivery/http"
	"github.com/tair/storefront/internal/shell"
	"github.com/tair/storefront/internal/statestore"
	pkgauth "github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

const (
	tokenTTL     = 24 * time.Hour
	metricPrefix = "storefront"
	statePrefix  = "storefront:"
)

// ProvideProductRepository selects the catalog backend and wraps it with tracing
func ProvideProductRepository(cfg *config.Config, db *gorm.DB) (catalogDomain.ProductRepository, error) {
	var repo catalogDomain.ProductRepository

	switch cfg.CatalogSource {
	case config.CatalogSourceLive:
		if cfg.APIBase == "" {
			return nil, fmt.Errorf("catalog source %q requires API_BASE", cfg.CatalogSource)
		}
		repo = catalogRepository.NewLiveProductRepository(cfg.APIBase, nil)
	case config.CatalogSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q requires a database", cfg.CatalogSource)
		}
		repo = catalogRepository.NewGormProductRepository(db)
	default:
		repo = catalogRepository.NewMockProductRepository()
	}

	logger.Logger.Info().Str("catalog_source", cfg.CatalogSource).Msg("Catalog repository selected")
	return catalogRepository.NewTracingProductRepository(repo, cfg.CatalogSource), nil
}

// ProvideStateStore persists carts and favorites in Redis when configured, in memory otherwise
func ProvideStateStore(cfg *config.Config, rdb *redis.Client) statestore.Store {
	if rdb == nil {
		logger.Logger.Warn().Msg("REDIS_ADDR not set, cart and favorites are kept in memory")
		return statestore.NewMemoryStore()
	}
	return statestore.NewRedisStore(rdb, statePrefix+cfg.Brand+":", cfg.StateTTL)
}

func ProvideCartRepository(store statestore.Store) cartDomain.CartRepository {
	return cartRepository.NewStateCartRepository(store)
}

func ProvideFavoritesRepository(store statestore.Store) favoritesDomain.FavoritesRepository {
	return favoritesRepository.NewStateFavoritesRepository(store)
}

func ProvideNotifier(publisher cartCommand.EventPublisher, cfg *config.Config) *cartCommand.Notifier {
	return cartCommand.NewNotifier(publisher, cfg.Brand)
}

func ProvideHTTPMetrics(reg prometheus.Registerer) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(reg, metricPrefix)
}

func ProvideResponseCache(cfg *config.Config, rdb *redis.Client) *catalogHTTP.ResponseCache {
	return catalogHTTP.NewResponseCache(rdb, cfg.CacheTTL)
}

func ProvideBrandRegistry(cfg *config.Config) *brand.Registry {
	return brand.NewRegistry(brand.NewFS(cfg.BrandsDir))
}

// ProvideActiveBrand loads the configured brand so a broken brand.yaml fails at startup
func ProvideActiveBrand(cfg *config.Config, registry *brand.Registry) (*brand.Config, error) {
	active, err := registry.Get(cfg.Brand)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand %q: %w", cfg.Brand, err)
	}
	return active, nil
}

func ProvideTokenManager(cfg *config.Config) *pkgauth.TokenManager {
	return pkgauth.NewTokenManager(cfg.JWTSecret, tokenTTL)
}

func ProvideSetupCoordinator(bridge *shell.Bridge) *shell.SetupCoordinator {
	return shell.NewSetupCoordinator(shell.ShowMainWindow(bridge))
}

func ProvideBrandHandler(registry *brand.Registry, active *brand.Config, m *metrics.HTTPMetrics) *brand.Handler {
	return brand.NewHandler(registry, active.Slug, m)
}

func ProvideNavigationHandler(registry *brand.Registry, active *brand.Config, m *metrics.HTTPMetrics) *navigationHTTP.NavigationHandler {
	return navigationHTTP.NewNavigationHandler(registry, active.Slug, m)
}

func ProvideShellHandler(bridge *shell.Bridge, setup *shell.SetupCoordinator, active *brand.Config, m *metrics.HTTPMetrics) *shell.Handler {
	productName := active.Shell.ProductName
	if productName == "" {
		productName = active.Brand.Name
	}
	return shell.NewHandler(bridge, setup, productName, m)
}

// SeedCatalog creates the catalog tables and fills them with the built-in catalog when empty
func SeedCatalog(ctx context.Context, db *gorm.DB) error {
	repo := catalogRepository.NewGormProductRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}

	seeded, err := repo.Seed(ctx, mockdata.Products(), mockdata.Categories())
	if err != nil {
		return err
	}
	if seeded {
		logger.Logger.Info().Msg("Catalog seeded")
	}
	return nil
}

// Wire sets
var InfrastructureSet = wire.NewSet(
	ProvideProductRepository,
	ProvideStateStore,
	ProvideCartRepository,
	ProvideFavoritesRepository,
	ProvideHTTPMetrics,
	ProvideResponseCache,
	ProvideBrandRegistry,
	ProvideActiveBrand,
	ProvideTokenManager,
	ProvideSetupCoordinator,
)

var CatalogSet = wire.NewSet(
	catalogQuery.NewListProductsHandler,
	catalogQuery.NewGetProductHandler,
	catalogQuery.NewListCategoriesHandler,
	catalogHTTP.NewCatalogHandler,
)

var CartSet = wire.NewSet(
	ProvideNotifier,
	cartCommand.NewAddItemHandler,
	cartCommand.NewRemoveItemHandler,
	cartCommand.NewUpdateQuantityHandler,
	cartCommand.NewClearCartHandler,
	cartQuery.NewGetCartHandler,
	cartQuery.NewIsInCartHandler,
	cartHTTP.NewCartHandler,
)

var FavoritesSet = wire.NewSet(
	favoritesCommand.NewToggleFavoriteHandler,
	favoritesCommand.NewAddFavoriteHandler,
	favoritesCommand.NewRemoveFavoriteHandler,
	favoritesCommand.NewClearFavoritesHandler,
	favoritesQuery.NewGetFavoritesHandler,
	favoritesQuery.NewIsFavoriteHandler,
	favoritesHTTP.NewFavoritesHandler,
)

var PresentationSet = wire.NewSet(
	ProvideBrandHandler,
	ProvideNavigationHandler,
	ProvideShellHandler,
	auth.NewHandler,
	wire.Struct(new(Server), "*"),
)
