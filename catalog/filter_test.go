package catalog

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"laptopshop/models"
)

func TestFilterUnconstrainedReturnsAllInOrder(t *testing.T) {
	inv := sampleInventory()
	got := Filter(inv, models.NewFilterCriteria())
	if diff := cmp.Diff(inv, got); diff != "" {
		t.Errorf("Filter with empty criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterDimensions(t *testing.T) {
	base := models.NewFilterCriteria()

	tests := []struct {
		name   string
		modify func(c *models.FilterCriteria)
		want   []int64
	}{
		{"brand", func(c *models.FilterCriteria) { c.Brands = []int64{brandAcer} }, []int64{1, 4}},
		{"two brands", func(c *models.FilterCriteria) { c.Brands = []int64{brandAcer, brandHP} }, []int64{1, 3, 4}},
		{"cpu", func(c *models.FilterCriteria) { c.CPUs = []string{"Core i5-1235U"} }, []int64{1, 5}},
		{"ssd", func(c *models.FilterCriteria) { c.SSDs = []string{"256GB NVMe"} }, []int64{3}},
		{"gpu", func(c *models.FilterCriteria) { c.GPUs = []string{"RTX 3050", "GTX 1650"} }, []int64{2, 4}},
		{"screen", func(c *models.FilterCriteria) { c.Screens = []string{"15.6 FHD"} }, []int64{1, 3}},
		{"status", func(c *models.FilterCriteria) { c.Statuses = []models.ProductStatus{models.StatusInactive} }, []int64{3}},
		{"price window", func(c *models.FilterCriteria) { c.PriceRange = models.PriceRange{Min: 15000000, Max: 18000000} }, []int64{1, 2}},
		{"inclusive bounds", func(c *models.FilterCriteria) { c.PriceRange = models.PriceRange{Min: 14200000, Max: 15900000} }, []int64{1, 3}},
		{"inverted range is swapped", func(c *models.FilterCriteria) { c.PriceRange = models.PriceRange{Min: 18000000, Max: 15000000} }, []int64{1, 2}},
		{"search", func(c *models.FilterCriteria) { c.SearchText = "acer" }, []int64{1, 4}},
		{"and across dimensions", func(c *models.FilterCriteria) {
			c.Brands = []int64{brandAcer}
			c.CPUs = []string{"Core i5-1235U"}
		}, []int64{1}},
		{"no match", func(c *models.FilterCriteria) { c.CPUs = []string{"M3"} }, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.modify(&c)
			got := ids(Filter(sampleInventory(), c))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterZeroPriceRangeOnlyMatchesFree(t *testing.T) {
	c := models.FilterCriteria{}
	got := ids(Filter(sampleInventory(), c))
	if diff := cmp.Diff([]int64{5}, got); diff != "" {
		t.Errorf("zero-value criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterMonotonic(t *testing.T) {
	inv := sampleInventory()
	narrow := models.NewFilterCriteria()
	narrow.Brands = []int64{brandAcer}
	narrow.CPUs = []string{"Core i5-1235U"}
	narrow.GPUs = []string{"Iris Xe"}
	narrow.SSDs = []string{"512GB NVMe"}
	narrow.Screens = []string{"15.6 FHD"}
	narrow.Statuses = []models.ProductStatus{models.StatusActive}
	narrow.PriceRange = models.PriceRange{Min: 15000000, Max: 16000000}

	widenings := []struct {
		name  string
		widen func(c *models.FilterCriteria)
	}{
		{"brand", func(c *models.FilterCriteria) { c.Brands = append(c.Brands, brandLenovo) }},
		{"cpu", func(c *models.FilterCriteria) { c.CPUs = append(c.CPUs, "Core i5-11400H") }},
		{"gpu", func(c *models.FilterCriteria) { c.GPUs = append(c.GPUs, "RTX 3050") }},
		{"ssd", func(c *models.FilterCriteria) { c.SSDs = append(c.SSDs, "256GB NVMe") }},
		{"screen", func(c *models.FilterCriteria) { c.Screens = append(c.Screens, "14 FHD") }},
		{"status", func(c *models.FilterCriteria) { c.Statuses = append(c.Statuses, models.StatusInactive) }},
		{"price", func(c *models.FilterCriteria) { c.PriceRange = models.AnyPrice() }},
		{"clear gpu", func(c *models.FilterCriteria) { c.GPUs = nil }},
	}

	before := Filter(inv, narrow)
	if len(before) == 0 {
		t.Fatal("narrow criteria matched nothing; the property would hold vacuously")
	}
	for _, w := range widenings {
		wide := narrow
		wide.Brands = slices.Clone(narrow.Brands)
		wide.CPUs = slices.Clone(narrow.CPUs)
		wide.GPUs = slices.Clone(narrow.GPUs)
		wide.SSDs = slices.Clone(narrow.SSDs)
		wide.Screens = slices.Clone(narrow.Screens)
		wide.Statuses = slices.Clone(narrow.Statuses)
		w.widen(&wide)

		after := ids(Filter(inv, wide))
		for _, item := range before {
			if !slices.Contains(after, item.ID) {
				t.Errorf("widening %s removed item %d", w.name, item.ID)
			}
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	inv := sampleInventory()
	c := models.NewFilterCriteria()
	c.SearchText = "5"
	c.Statuses = []models.ProductStatus{models.StatusActive}

	once := Filter(inv, c)
	twice := Filter(once, c)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Filter not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterEmptyInventory(t *testing.T) {
	got := Filter(nil, models.NewFilterCriteria())
	if len(got) != 0 {
		t.Errorf("expected no items, got %d", len(got))
	}
}

func TestFilterComponents(t *testing.T) {
	components := []models.PriceableComponent{
		{ID: 1, Name: "Kingston 8GB", Type: models.ComponentRAM, Price: 500000, Specs: models.ComponentSpecs{Capacity: "8GB", RAMType: "DDR4", Bus: "3200MHz"}},
		{ID: 2, Name: "Samsung 980", Type: models.ComponentSSD, Price: 1200000, Specs: models.ComponentSpecs{Capacity: "512GB", SSDType: "NVMe"}},
		{ID: 3, Name: "Logitech M331", Type: models.ComponentMouse, Price: 350000},
		{ID: 4, Name: "Crucial 16GB", Type: models.ComponentRAM, Price: 950000, Specs: models.ComponentSpecs{Capacity: "16GB", RAMType: "DDR4", Bus: "3200MHz"}},
	}

	tests := []struct {
		name     string
		criteria models.ComponentCriteria
		want     []int64
	}{
		{"all", models.NewComponentCriteria(), []int64{1, 2, 3, 4}},
		{"type", models.ComponentCriteria{Types: []models.ComponentType{models.ComponentRAM}, PriceRange: models.AnyPrice()}, []int64{1, 4}},
		{"price", models.ComponentCriteria{PriceRange: models.PriceRange{Min: 400000, Max: 1000000}}, []int64{1, 4}},
		{"search spec", models.ComponentCriteria{SearchText: "nvme", PriceRange: models.AnyPrice()}, []int64{2}},
		{"search type", models.ComponentCriteria{SearchText: "mouse", PriceRange: models.AnyPrice()}, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterComponents(components, tt.criteria)
			gotIDs := make([]int64, 0, len(got))
			for _, c := range got {
				gotIDs = append(gotIDs, c.ID)
			}
			if diff := cmp.Diff(tt.want, gotIDs); diff != "" {
				t.Errorf("FilterComponents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
