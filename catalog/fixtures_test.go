package catalog

import "laptopshop/models"

const (
	brandAcer   int64 = 1
	brandLenovo int64 = 2
	brandHP     int64 = 3
)

func sampleInventory() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 1, Name: "Acer Aspire 5", Model: "A515-58", Price: 15900000, BrandID: brandAcer, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Core i5-1235U", GPU: "Iris Xe", RAM: "8GB DDR4", SSD: "512GB NVMe", Screen: "15.6 FHD", Battery: "50Wh"}},
		{ID: 2, Name: "Lenovo IdeaPad 3 Gaming", Model: "15ACH6", Price: 17500000, BrandID: brandLenovo, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Ryzen 5 5600H", GPU: "GTX 1650", RAM: "8GB DDR4", SSD: "512GB NVMe", Screen: "15.6 FHD 120Hz", Battery: "45Wh"}},
		{ID: 3, Name: "HP Pavilion 15", Model: "eh3000", Price: 14200000, BrandID: brandHP, Status: models.StatusInactive,
			Specs: models.ItemSpecs{CPU: "Ryzen 5 5625U", GPU: "Radeon", RAM: "16GB DDR4", SSD: "256GB NVMe", Screen: "15.6 FHD", Battery: "41Wh"}},
		{ID: 4, Name: "Acer Nitro 5", Model: "AN515-57", Price: 21900000, BrandID: brandAcer, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Core i5-11400H", GPU: "RTX 3050", RAM: "16GB DDR4", SSD: "512GB NVMe", Screen: "15.6 FHD 144Hz", Battery: "57Wh"}},
		{ID: 5, Name: "Lenovo ThinkPad E14", Model: "Gen 4", Price: 0, BrandID: brandLenovo, Status: models.StatusActive,
			Specs: models.ItemSpecs{CPU: "Core i5-1235U", GPU: "", RAM: "8GB DDR4", SSD: "", Screen: "14 FHD", Battery: "57Wh"}},
	}
}

func ids(items []models.CatalogItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
