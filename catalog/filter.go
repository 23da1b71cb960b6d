// Package catalog holds the faceted filter engine shared by the public catalog,
// the admin product list and the component list: search matching, facet
// extraction, predicate filtering and pagination. Every function is pure and
// safe for concurrent use on the same snapshot.
package catalog

import (
	"slices"

	"laptopshop/models"
)

// Filter returns the items that satisfy every dimension of criteria, in their
// original order. Within a dimension the selected values are OR'd; dimensions are
// AND'd. An empty selection leaves its dimension unconstrained.
// An inverted price range (min > max) is treated as if its bounds were swapped.
func Filter(items []models.CatalogItem, criteria models.FilterCriteria) []models.CatalogItem {
	priceRange := criteria.PriceRange.Normalized()
	result := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if matches(item, criteria, priceRange) {
			result = append(result, item)
		}
	}
	return result
}

func matches(item models.CatalogItem, c models.FilterCriteria, priceRange models.PriceRange) bool {
	if !MatchesSearch(c.SearchText, item) {
		return false
	}
	if !selected(c.Brands, item.BrandID) {
		return false
	}
	if !priceRange.Contains(item.Price) {
		return false
	}
	if !selected(c.CPUs, item.Specs.CPU) ||
		!selected(c.SSDs, item.Specs.SSD) ||
		!selected(c.GPUs, item.Specs.GPU) ||
		!selected(c.Screens, item.Specs.Screen) {
		return false
	}
	return selected(c.Statuses, item.Status)
}

// FilterComponents applies the same rules to the component list: type set,
// inclusive price range and case-insensitive search
func FilterComponents(components []models.PriceableComponent, criteria models.ComponentCriteria) []models.PriceableComponent {
	priceRange := criteria.PriceRange.Normalized()
	result := make([]models.PriceableComponent, 0, len(components))
	for _, c := range components {
		if !selected(criteria.Types, c.Type) {
			continue
		}
		if !priceRange.Contains(c.Price) {
			continue
		}
		if !matchesComponentSearch(criteria.SearchText, c) {
			continue
		}
		result = append(result, c)
	}
	return result
}

// selected reports whether v is in set; an empty set selects everything
func selected[T comparable](set []T, v T) bool {
	return len(set) == 0 || slices.Contains(set, v)
}
