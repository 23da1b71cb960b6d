package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"laptopshop/logx"
	"laptopshop/models"
)

// LaptopSpecRepository looks up upgrade compatibility records by model name
type LaptopSpecRepository struct {
	db *sql.DB
}

// NewLaptopSpecRepository creates a new LaptopSpecRepository
func NewLaptopSpecRepository(db *sql.DB) *LaptopSpecRepository {
	return &LaptopSpecRepository{db: db}
}

// Ensure LaptopSpecRepository implements LaptopSpecRepositoryInterface
var _ LaptopSpecRepositoryInterface = (*LaptopSpecRepository)(nil)

// FindByModel returns the spec of modelName, matched case-insensitively
func (r *LaptopSpecRepository) FindByModel(ctx context.Context, modelName string) (*models.LaptopSpec, error) {
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		return nil, ErrSpecNotFound
	}

	query := `
		SELECT model_name,
		       COALESCE(ram_type, ''), COALESCE(ram_bus, ''), ram_slots, COALESCE(ram_max_capacity, ''),
		       COALESCE(ssd_type, ''), ssd_slots, COALESCE(ssd_max_capacity, '')
		FROM laptop_specs
		WHERE LOWER(model_name) = LOWER($1)
	`

	var spec models.LaptopSpec
	err := r.db.QueryRowContext(ctx, query, modelName).Scan(
		&spec.ModelName,
		&spec.RAM.Type,
		&spec.RAM.Bus,
		&spec.RAM.Slots,
		&spec.RAM.MaxCapacity,
		&spec.SSD.Type,
		&spec.SSD.Slots,
		&spec.SSD.MaxCapacity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logx.Debug().Str("model", modelName).Msg("🔍 No laptop spec on record")
			return nil, ErrSpecNotFound
		}
		logx.Error().Err(err).Str("model", modelName).Msg("❌ Error fetching laptop spec")
		return nil, fmt.Errorf("failed to get laptop spec: %w", err)
	}

	return &spec, nil
}
