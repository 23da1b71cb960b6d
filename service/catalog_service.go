package service

import (
	"context"
	"errors"
	"fmt"

	"laptopshop/catalog"
	"laptopshop/errx"
	"laptopshop/logx"
	"laptopshop/models"
)

// Surface is the audience a catalog listing is rendered for
type Surface string

const (
	// SurfacePublic only ever shows active products
	SurfacePublic Surface = "public"
	// SurfaceAdmin honours the caller's status selection
	SurfaceAdmin Surface = "admin"
)

// CatalogService serves filtered, paginated catalog pages and facets
type CatalogService struct {
	snapshots  SnapshotServiceInterface
	memo       *catalog.Memo
	pageSize   int
	upperBound int64
}

// NewCatalogService creates a new CatalogService.
// pageSize is used when a caller does not ask for one; upperBound is the
// facet price ceiling reported for an inventory without priced items.
func NewCatalogService(snapshots SnapshotServiceInterface, memo *catalog.Memo, pageSize int, upperBound int64) *CatalogService {
	if memo == nil {
		memo = catalog.NewMemo(catalog.DefaultMemoSize)
	}
	if pageSize <= 0 {
		pageSize = catalog.DefaultPageSize
	}
	return &CatalogService{
		snapshots:  snapshots,
		memo:       memo,
		pageSize:   pageSize,
		upperBound: upperBound,
	}
}

// Browse returns one page of products matching criteria together with the facets of the surface.
// pageSize 0 selects the configured default.
func (s *CatalogService) Browse(ctx context.Context, surface Surface, criteria models.FilterCriteria, pageNumber, pageSize int) (models.CatalogPageResponse, error) {
	snapshot, err := s.snapshots.Inventory(ctx)
	if err != nil {
		return models.CatalogPageResponse{}, err
	}

	criteria = scoped(surface, criteria)
	items := s.memo.Filter(snapshot, criteria)

	page, err := catalog.Paginate(items, s.size(pageSize), pageNumber)
	if err != nil {
		return models.CatalogPageResponse{}, pageError(err)
	}

	logx.Debug().
		Str("surface", string(surface)).
		Int("matched", page.TotalItems).
		Int("page", page.PageNumber).
		Msg("🔍 Catalog page served")

	return models.CatalogPageResponse{
		Page:   page,
		Facets: s.facets(snapshot, surface),
	}, nil
}

// Facets returns the facet set of the surface's inventory
func (s *CatalogService) Facets(ctx context.Context, surface Surface) (models.FacetSet, error) {
	snapshot, err := s.snapshots.Inventory(ctx)
	if err != nil {
		return models.FacetSet{}, err
	}
	return s.facets(snapshot, surface), nil
}

// Components returns one page of priced components matching criteria
func (s *CatalogService) Components(ctx context.Context, criteria models.ComponentCriteria, pageNumber, pageSize int) (models.Page[models.PriceableComponent], error) {
	priceCatalog, err := s.snapshots.PriceCatalog(ctx)
	if err != nil {
		return models.Page[models.PriceableComponent]{}, err
	}

	components := catalog.FilterComponents(priceCatalog.Components, criteria)
	page, err := catalog.Paginate(components, s.size(pageSize), pageNumber)
	if err != nil {
		return models.Page[models.PriceableComponent]{}, pageError(err)
	}
	return page, nil
}

// facets are computed over the whole inventory visible on the surface,
// independent of the caller's current selection
func (s *CatalogService) facets(snapshot models.InventorySnapshot, surface Surface) models.FacetSet {
	if surface == SurfaceAdmin {
		return s.memo.Facets(snapshot, s.upperBound)
	}

	active := models.InventorySnapshot{
		Items:     s.memo.Filter(snapshot, scoped(SurfacePublic, models.NewFilterCriteria())),
		FetchedAt: snapshot.FetchedAt,
	}
	if snapshot.Version != "" {
		active.Version = snapshot.Version + ":active"
	}
	return s.memo.Facets(active, s.upperBound)
}

func (s *CatalogService) size(pageSize int) int {
	if pageSize == 0 {
		return s.pageSize
	}
	return pageSize
}

// scoped applies the surface's fixed constraints to criteria
func scoped(surface Surface, criteria models.FilterCriteria) models.FilterCriteria {
	if surface == SurfaceAdmin {
		return criteria
	}
	criteria.Statuses = []models.ProductStatus{models.StatusActive}
	return criteria
}

func pageError(err error) error {
	if errors.Is(err, catalog.ErrInvalidPage) {
		return errx.BadRequest(err, "page and pageSize must be positive")
	}
	return fmt.Errorf("failed to paginate: %w", err)
}
