package repository

import (
	"context"
	"errors"

	"laptopshop/models"
)

// ErrSpecNotFound is returned when the spec lookup has no record for a model
var ErrSpecNotFound = errors.New("laptop spec not found")

// ProductRepositoryInterface defines the contract of the Catalog Data Service
type ProductRepositoryInterface interface {
	ListProducts(ctx context.Context) ([]models.CatalogItem, error)
}

// ComponentRepositoryInterface defines the contract of the Pricing Data Service
type ComponentRepositoryInterface interface {
	ListComponents(ctx context.Context) ([]models.PriceableComponent, error)
}

// LaptopSpecRepositoryInterface defines the contract of the Spec Lookup Service.
// FindByModel returns ErrSpecNotFound when the model is unknown.
type LaptopSpecRepositoryInterface interface {
	FindByModel(ctx context.Context, modelName string) (*models.LaptopSpec, error)
}
