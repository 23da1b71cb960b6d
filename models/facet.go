package models

// FacetSet represents the selectable values per attribute dimension and the price bounds
type FacetSet struct {
	CPUs     []string `json:"cpus"`
	GPUs     []string `json:"gpus"`
	RAMs     []string `json:"rams"`
	SSDs     []string `json:"ssds"`
	Screens  []string `json:"screens"`
	MinPrice int64    `json:"minPrice"`
	MaxPrice int64    `json:"maxPrice"`
}
