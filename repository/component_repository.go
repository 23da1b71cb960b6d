package repository

import (
	"context"
	"database/sql"
	"fmt"

	"laptopshop/logx"
	"laptopshop/models"
)

// ComponentRepository handles database operations for priced components
type ComponentRepository struct {
	db *sql.DB
}

// NewComponentRepository creates a new ComponentRepository
func NewComponentRepository(db *sql.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Ensure ComponentRepository implements ComponentRepositoryInterface
var _ ComponentRepositoryInterface = (*ComponentRepository)(nil)

// ListComponents retrieves every priced component in catalog order
func (r *ComponentRepository) ListComponents(ctx context.Context) ([]models.PriceableComponent, error) {
	query := `
		SELECT id, name, type, price,
		       COALESCE(capacity, '') AS capacity,
		       COALESCE(ram_type, '') AS ram_type,
		       COALESCE(bus, '') AS bus,
		       COALESCE(ssd_type, '') AS ssd_type
		FROM components
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logx.Error().Err(err).Msg("❌ Error querying components")
		return nil, fmt.Errorf("failed to query components: %w", err)
	}
	defer rows.Close()

	components := []models.PriceableComponent{}
	for rows.Next() {
		var c models.PriceableComponent
		var componentType string
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&componentType,
			&c.Price,
			&c.Specs.Capacity,
			&c.Specs.RAMType,
			&c.Specs.Bus,
			&c.Specs.SSDType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan component: %w", err)
		}
		c.Type = models.ComponentType(componentType)
		components = append(components, c)
	}

	if err := rows.Err(); err != nil {
		logx.Error().Err(err).Msg("❌ Error iterating components")
		return nil, fmt.Errorf("failed to iterate components: %w", err)
	}

	logx.Debug().Int("count", len(components)).Msg("✓ Fetched components")
	return components, nil
}
