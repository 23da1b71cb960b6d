package service

import (
	"context"

	"laptopshop/models"
)

// SnapshotServiceInterface defines the contract for reading the current inventory and price catalog
type SnapshotServiceInterface interface {
	Inventory(ctx context.Context) (models.InventorySnapshot, error)
	PriceCatalog(ctx context.Context) (models.PriceCatalog, error)
}
