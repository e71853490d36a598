//go:build wireinject
// +build wireinject

package storefront

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartCommand "github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/internal/shell"
)

// InitializeServer builds the storefront with all dependencies.
// db and rdb may be nil when PostgreSQL or Redis are not configured.
func InitializeServer(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	publisher cartCommand.EventPublisher,
	reg prometheus.Registerer,
	bridge *shell.Bridge,
) (*Server, error) {
	wire.Build(
		InfrastructureSet,
		CatalogSet,
		CartSet,
		FavoritesSet,
		PresentationSet,
	)
	return nil, nil
}
