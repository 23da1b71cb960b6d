package service

import (
	"context"
	"strings"
	"sync/atomic"

	"laptopshop/models"
	"laptopshop/repository"
)

type fakeProducts struct {
	items []models.CatalogItem
	err   error
	calls atomic.Int32
}

func (f *fakeProducts) ListProducts(context.Context) ([]models.CatalogItem, error) {
	f.calls.Add(1)
	return f.items, f.err
}

type fakeComponents struct {
	components []models.PriceableComponent
	err        error
	calls      atomic.Int32
}

func (f *fakeComponents) ListComponents(context.Context) ([]models.PriceableComponent, error) {
	f.calls.Add(1)
	return f.components, f.err
}

type fakeSpecs struct {
	specs map[string]models.LaptopSpec
	err   error
}

func (f *fakeSpecs) FindByModel(_ context.Context, name string) (*models.LaptopSpec, error) {
	if f.err != nil {
		return nil, f.err
	}
	spec, ok := f.specs[strings.ToLower(name)]
	if !ok {
		return nil, repository.ErrSpecNotFound
	}
	return &spec, nil
}

// staticSnapshots serves fixed snapshots without a repository
type staticSnapshots struct {
	inventory models.InventorySnapshot
	prices    models.PriceCatalog
	err       error
}

func (s *staticSnapshots) Inventory(context.Context) (models.InventorySnapshot, error) {
	return s.inventory, s.err
}

func (s *staticSnapshots) PriceCatalog(context.Context) (models.PriceCatalog, error) {
	return s.prices, s.err
}

func strPtr(s string) *string { return &s }

func sampleItems() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 1, Name: "Acer Aspire 5", Price: 15900000, BrandID: 1, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Core i5-1235U", GPU: "Iris Xe", RAM: "8GB DDR4", SSD: "512GB NVMe", Screen: "15.6 FHD"}},
		{ID: 2, Name: "Lenovo IdeaPad 3", Price: 17500000, BrandID: 2, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Ryzen 5 5600H", GPU: "GTX 1650", RAM: "8GB DDR4", SSD: "512GB NVMe", Screen: "15.6 FHD 120Hz"}},
		{ID: 3, Name: "HP Pavilion 15", Price: 30000000, BrandID: 3, Status: models.StatusInactive,
			Specs: models.ItemSpecs{CPU: "Ryzen 7 5825U", GPU: "Radeon", RAM: "16GB DDR4", SSD: "1TB NVMe", Screen: "15.6 FHD"}},
		{ID: 4, Name: "Acer Nitro 5", Price: 21900000, BrandID: 1, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Core i5-11400H", GPU: "RTX 3050", RAM: "16GB DDR4", SSD: "512GB NVMe", Screen: "15.6 FHD 144Hz"}},
	}
}

func sampleComponents() []models.PriceableComponent {
	return []models.PriceableComponent{
		{ID: 1, Name: "Kingston 8GB DDR4 3200", Type: models.ComponentRAM, Price: 500000,
			Specs: models.ComponentSpecs{Capacity: "8GB", RAMType: "DDR4", Bus: "3200MHz"}},
		{ID: 2, Name: "Kingston 16GB DDR4 3200", Type: models.ComponentRAM, Price: 900000,
			Specs: models.ComponentSpecs{Capacity: "16GB", RAMType: "DDR4", Bus: "3200MHz"}},
		{ID: 3, Name: "Samsung 980 512GB", Type: models.ComponentSSD, Price: 1200000,
			Specs: models.ComponentSpecs{Capacity: "512GB", SSDType: "NVMe"}},
		{ID: 4, Name: "Logitech M331", Type: models.ComponentMouse, Price: 350000},
	}
}

func sampleSpecs() map[string]models.LaptopSpec {
	return map[string]models.LaptopSpec{
		"acer aspire 5": {
			ModelName: "Acer Aspire 5",
			RAM:       models.RAMSupport{Type: "DDR4", Bus: "3200MHz", Slots: 2, MaxCapacity: "32GB"},
			SSD:       models.SSDSupport{Type: "NVMe", Slots: 1, MaxCapacity: "1TB"},
		},
	}
}
