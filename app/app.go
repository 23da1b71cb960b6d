package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"laptopshop/app/controller"
	"laptopshop/app/router"
	"laptopshop/catalog"
	"laptopshop/config"
	"laptopshop/db"
	"laptopshop/logx"
	"laptopshop/repository"
	"laptopshop/service"
	"laptopshop/utils"
)

// App holds the wired services and the HTTP handler
type App struct {
	Snapshots *service.SnapshotService
	Catalog   *service.CatalogService
	Upgrade   *service.UpgradeService
	Currency  utils.Currency
	Handler   http.Handler

	redis *redis.Client
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database connection
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	if err := db.InitDB(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Snapshot cache: Redis when configured, in process otherwise
	var (
		snapshotCache service.SnapshotCache
		redisClient   *redis.Client
	)
	if cfg.Redis.Enabled() {
		redisClient, err = cfg.Redis.New()
		if err != nil {
			db.CloseDB()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		snapshotCache = service.NewRedisSnapshotCache(redisClient)
		logx.Info().Msg("✓ Redis snapshot cache enabled")
	} else {
		snapshotCache = service.NewMemorySnapshotCache()
		logx.Info().Msg("ℹ️ REDIS_URL not set, using in-process snapshot cache")
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.DB)
	componentRepo := repository.NewComponentRepository(db.DB)
	specRepo := repository.NewLaptopSpecRepository(db.DB)

	// Initialize services
	snapshots := service.NewSnapshotService(productRepo, componentRepo, snapshotCache, cfg.SnapshotTTL)
	catalogService := service.NewCatalogService(snapshots, catalog.NewMemo(cfg.MemoSize), cfg.PageSize, cfg.PriceUpperBound)
	upgradeService := service.NewUpgradeService(specRepo, snapshots)
	currency := utils.LookupCurrency(cfg.Currency)

	// Create controllers
	controllers := &router.Controllers{
		Catalog:   controller.NewCatalogController(catalogService),
		Component: controller.NewComponentController(catalogService),
		Upgrade:   controller.NewUpgradeController(upgradeService, currency),
	}

	return &App{
		Snapshots: snapshots,
		Catalog:   catalogService,
		Upgrade:   upgradeService,
		Currency:  currency,
		Handler:   router.SetupRoutes(http.NewServeMux(), controllers),
		redis:     redisClient,
	}, nil
}

// Close releases the database and Redis connections
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logx.Warn().Err(err).Msg("⚠️ Error closing redis client")
		}
	}
	if err := db.CloseDB(); err != nil {
		logx.Warn().Err(err).Msg("⚠️ Error closing database")
	}
}
