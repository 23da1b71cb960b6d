package models

import "time"

// ProductStatus is the publication status of a catalog item
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

// ItemSpecs holds the free-text spec labels of a laptop.
// Values are labels as typed by the catalog editors (e.g. "Core i5-1235U", "15.6\" FHD"),
// not structured values.
type ItemSpecs struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	SSD     string `json:"ssd"`
	Screen  string `json:"screen"`
	Battery string `json:"battery"`
}

// CatalogItem represents a single sellable laptop in the catalog
type CatalogItem struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Model      string        `json:"model"`
	Price      int64         `json:"price"` // minor currency unit
	Specs      ItemSpecs     `json:"specs"`
	CategoryID int64         `json:"categoryId"`
	BrandID    int64         `json:"brandId"`
	Status     ProductStatus `json:"status"`
}

// InventorySnapshot is an immutable, ordered view of the catalog as returned by one fetch.
// Version identifies the fetch and is used as the inventory identity for memoisation.
type InventorySnapshot struct {
	Version   string        `json:"version"`
	FetchedAt time.Time     `json:"fetchedAt"`
	Items     []CatalogItem `json:"items"`
}
