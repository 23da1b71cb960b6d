package repository

import (
	"context"
	"database/sql"
	"fmt"

	"laptopshop/logx"
	"laptopshop/models"
)

// ProductRepository handles database operations for catalog products
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// ListProducts retrieves every product, active or not, in catalog order
func (r *ProductRepository) ListProducts(ctx context.Context) ([]models.CatalogItem, error) {
	query := `
		SELECT id, name, COALESCE(model, '') AS model, price,
		       COALESCE(cpu, '') AS cpu,
		       COALESCE(gpu, '') AS gpu,
		       COALESCE(ram, '') AS ram,
		       COALESCE(ssd, '') AS ssd,
		       COALESCE(screen, '') AS screen,
		       COALESCE(battery, '') AS battery,
		       category_id, brand_id, status
		FROM products
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logx.Error().Err(err).Msg("❌ Error querying products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	items := []models.CatalogItem{}
	for rows.Next() {
		var item models.CatalogItem
		var status string
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Model,
			&item.Price,
			&item.Specs.CPU,
			&item.Specs.GPU,
			&item.Specs.RAM,
			&item.Specs.SSD,
			&item.Specs.Screen,
			&item.Specs.Battery,
			&item.CategoryID,
			&item.BrandID,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		item.Status = models.ProductStatus(status)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logx.Error().Err(err).Msg("❌ Error iterating products")
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	logx.Debug().Int("count", len(items)).Msg("✓ Fetched products")
	return items, nil
}
