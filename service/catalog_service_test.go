package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"laptopshop/catalog"
	"laptopshop/errx"
	"laptopshop/models"
)

func newCatalogService() *CatalogService {
	snapshots := &staticSnapshots{
		inventory: models.InventorySnapshot{Version: "v1", Items: sampleItems()},
		prices:    models.PriceCatalog{Version: "p1", Components: sampleComponents()},
	}
	return NewCatalogService(snapshots, catalog.NewMemo(16), 2, 100000000)
}

func itemIDs(items []models.CatalogItem) []int64 {
	out := []int64{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestBrowseSurfaces(t *testing.T) {
	tests := []struct {
		name     string
		surface  Surface
		statuses []models.ProductStatus
		want     []int64
	}{
		{"public hides inactive", SurfacePublic, nil, []int64{1, 2, 4}},
		{"public ignores caller statuses", SurfacePublic, []models.ProductStatus{models.StatusInactive}, []int64{1, 2, 4}},
		{"admin sees everything", SurfaceAdmin, nil, []int64{1, 2, 3, 4}},
		{"admin filters by status", SurfaceAdmin, []models.ProductStatus{models.StatusInactive}, []int64{3}},
	}

	svc := newCatalogService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.NewFilterCriteria()
			c.Statuses = tt.statuses
			resp, err := svc.Browse(context.Background(), tt.surface, c, 1, 10)
			if err != nil {
				t.Fatalf("Browse: %v", err)
			}
			if diff := cmp.Diff(tt.want, itemIDs(resp.Page.Items)); diff != "" {
				t.Errorf("Browse ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBrowseUsesDefaultPageSize(t *testing.T) {
	resp, err := newCatalogService().Browse(context.Background(), SurfacePublic, models.NewFilterCriteria(), 2, 0)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if resp.Page.PageSize != 2 || resp.Page.TotalPages != 2 {
		t.Errorf("page size/total = %d/%d; want 2/2", resp.Page.PageSize, resp.Page.TotalPages)
	}
	if diff := cmp.Diff([]int64{4}, itemIDs(resp.Page.Items)); diff != "" {
		t.Errorf("page 2 ids mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowseInvalidPage(t *testing.T) {
	_, err := newCatalogService().Browse(context.Background(), SurfacePublic, models.NewFilterCriteria(), 0, 10)
	if got := errx.StatusOf(err); got != http.StatusBadRequest {
		t.Errorf("StatusOf(%v) = %d; want %d", err, got, http.StatusBadRequest)
	}
}

func TestFacetsPerSurface(t *testing.T) {
	svc := newCatalogService()

	public, err := svc.Facets(context.Background(), SurfacePublic)
	if err != nil {
		t.Fatalf("Facets: %v", err)
	}
	if public.MaxPrice != 21900000 {
		t.Errorf("public MaxPrice = %d; want 21900000", public.MaxPrice)
	}
	for _, cpu := range public.CPUs {
		if cpu == "Ryzen 7 5825U" {
			t.Errorf("public CPUs include inactive item's %q", cpu)
		}
	}

	admin, err := svc.Facets(context.Background(), SurfaceAdmin)
	if err != nil {
		t.Fatalf("Facets: %v", err)
	}
	if admin.MaxPrice != 30000000 {
		t.Errorf("admin MaxPrice = %d; want 30000000", admin.MaxPrice)
	}
}

func TestBrowseFacetsIgnoreSelection(t *testing.T) {
	svc := newCatalogService()
	c := models.NewFilterCriteria()
	c.Brands = []int64{2}

	resp, err := svc.Browse(context.Background(), SurfacePublic, c, 1, 10)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(resp.Facets.CPUs) != 3 {
		t.Errorf("facet CPUs = %v; want all 3 active CPUs", resp.Facets.CPUs)
	}
}

func TestComponents(t *testing.T) {
	c := models.ComponentCriteria{Types: []models.ComponentType{models.ComponentRAM}, PriceRange: models.AnyPrice()}
	page, err := newCatalogService().Components(context.Background(), c, 1, 10)
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	if page.TotalItems != 2 {
		t.Errorf("TotalItems = %d; want 2", page.TotalItems)
	}
	for _, comp := range page.Items {
		if comp.Type != models.ComponentRAM {
			t.Errorf("got component type %q; want RAM", comp.Type)
		}
	}
}
