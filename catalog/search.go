package catalog

import (
	"strings"

	"laptopshop/models"
)

// MatchesSearch reports whether query occurs, case-insensitively, in the item's
// name, model, cpu, gpu, ram or ssd label. An empty query matches every item.
// Only case is folded: accents and punctuation are compared as-is.
func MatchesSearch(query string, item models.CatalogItem) bool {
	if query == "" {
		return true
	}
	return containsFold(query,
		item.Name,
		item.Model,
		item.Specs.CPU,
		item.Specs.GPU,
		item.Specs.RAM,
		item.Specs.SSD,
	)
}

// matchesComponentSearch is the component-list counterpart of MatchesSearch
func matchesComponentSearch(query string, c models.PriceableComponent) bool {
	if query == "" {
		return true
	}
	return containsFold(query,
		c.Name,
		string(c.Type),
		c.Specs.Capacity,
		c.Specs.RAMType,
		c.Specs.Bus,
		c.Specs.SSDType,
	)
}

func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
