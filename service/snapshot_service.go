package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"laptopshop/errx"
	"laptopshop/logx"
	"laptopshop/models"
	"laptopshop/repository"
)

// SnapshotService turns repository reads into immutable, versioned snapshots.
// Each cached fetch gets a fresh Version so memoised results never outlive their
// inventory. With caching off every call is a new fetch, so snapshots carry no
// Version and downstream memoisation is skipped.
// Implements SnapshotServiceInterface
type SnapshotService struct {
	products   repository.ProductRepositoryInterface
	components repository.ComponentRepositoryInterface
	cache      SnapshotCache
	ttl        time.Duration
	group      singleflight.Group
	now        func() time.Time
}

// NewSnapshotService creates a new SnapshotService. A nil cache or a zero ttl
// disables caching: every call reads the repositories and snapshots are unversioned.
func NewSnapshotService(
	products repository.ProductRepositoryInterface,
	components repository.ComponentRepositoryInterface,
	cache SnapshotCache,
	ttl time.Duration,
) *SnapshotService {
	return &SnapshotService{
		products:   products,
		components: components,
		cache:      cache,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Ensure SnapshotService implements SnapshotServiceInterface
var _ SnapshotServiceInterface = (*SnapshotService)(nil)

// Inventory returns the current inventory snapshot
func (s *SnapshotService) Inventory(ctx context.Context) (models.InventorySnapshot, error) {
	var snapshot models.InventorySnapshot
	err := s.cached(ctx, inventoryCacheKey, &snapshot, func() (any, error) {
		items, err := s.products.ListProducts(ctx)
		if err != nil {
			return nil, errx.WrapDatabase(fmt.Errorf("failed to load inventory: %w", err))
		}
		return models.InventorySnapshot{
			Version:   s.version(),
			FetchedAt: s.now().UTC(),
			Items:     items,
		}, nil
	})
	return snapshot, err
}

// PriceCatalog returns the current component price catalog
func (s *SnapshotService) PriceCatalog(ctx context.Context) (models.PriceCatalog, error) {
	var catalog models.PriceCatalog
	err := s.cached(ctx, priceCatalogCacheKey, &catalog, func() (any, error) {
		components, err := s.components.ListComponents(ctx)
		if err != nil {
			return nil, errx.WrapDatabase(fmt.Errorf("failed to load price catalog: %w", err))
		}
		return models.PriceCatalog{
			Version:    s.version(),
			FetchedAt:  s.now().UTC(),
			Components: components,
		}, nil
	})
	return catalog, err
}

// Load fetches the inventory and the price catalog in parallel
func (s *SnapshotService) Load(ctx context.Context) (models.InventorySnapshot, models.PriceCatalog, error) {
	var (
		inventory models.InventorySnapshot
		catalog   models.PriceCatalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inventory, err = s.Inventory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.PriceCatalog(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.InventorySnapshot{}, models.PriceCatalog{}, err
	}

	logx.Info().
		Int("products", len(inventory.Items)).
		Int("components", len(catalog.Components)).
		Msg("✓ Loaded inventory and price catalog")
	return inventory, catalog, nil
}

func (s *SnapshotService) caching() bool {
	return s.cache != nil && s.ttl > 0
}

// version identifies a fetch that will be served again from the cache
func (s *SnapshotService) version() string {
	if !s.caching() {
		return ""
	}
	return uuid.NewString()
}

// cached decodes key from the cache into dst, or runs fetch and stores its result.
// Concurrent misses on the same key share one fetch. Cache failures are logged
// and fall through to the repositories.
func (s *SnapshotService) cached(ctx context.Context, key string, dst any, fetch func() (any, error)) error {
	if s.caching() {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			if err := json.Unmarshal(raw, dst); err == nil {
				return nil
			}
			logx.Warn().Str("key", key).Msg("⚠️ Discarding undecodable cached snapshot")
		case !errors.Is(err, ErrCacheMiss):
			logx.Warn().Err(err).Str("key", key).Msg("⚠️ Snapshot cache read failed")
		}
	}

	raw, err, _ := s.group.Do(key, func() (any, error) {
		logx.Debug().Str("key", key).Msg("🔍 Fetching snapshot from database")
		value, err := fetch()
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode snapshot: %w", err)
		}
		if s.caching() {
			if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
				logx.Warn().Err(err).Str("key", key).Msg("⚠️ Snapshot cache write failed")
			}
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw.([]byte), dst); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return nil
}
