package models

import "math"

// PriceRange is an inclusive [Min, Max] price window in minor currency units
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// AnyPrice returns the unbounded range [0, +inf)
func AnyPrice() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

// Normalized returns the range with Min <= Max, swapping the bounds when inverted
func (r PriceRange) Normalized() PriceRange {
	if r.Min > r.Max {
		return PriceRange{Min: r.Max, Max: r.Min}
	}
	return r
}

// Contains reports whether price lies within the (normalized) range
func (r PriceRange) Contains(price int64) bool {
	n := r.Normalized()
	return price >= n.Min && price <= n.Max
}

// FilterCriteria is the set of active selections on the laptop catalog.
// An empty selection slice means the dimension is unconstrained, never "exclude all".
// Slices are treated as sets: order and duplicates are irrelevant.
type FilterCriteria struct {
	Brands     []int64         `json:"brands"`
	CPUs       []string        `json:"cpus"`
	SSDs       []string        `json:"ssds"`
	GPUs       []string        `json:"gpus"`
	Screens    []string        `json:"screens"`
	Statuses   []ProductStatus `json:"statuses"`
	PriceRange PriceRange      `json:"priceRange"`
	SearchText string          `json:"searchText"`
}

// NewFilterCriteria returns criteria that match the whole inventory
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{PriceRange: AnyPrice()}
}

// ComponentCriteria is the set of active selections on the component list
type ComponentCriteria struct {
	Types      []ComponentType `json:"types"`
	PriceRange PriceRange      `json:"priceRange"`
	SearchText string          `json:"searchText"`
}

// NewComponentCriteria returns criteria that match every component
func NewComponentCriteria() ComponentCriteria {
	return ComponentCriteria{PriceRange: AnyPrice()}
}
