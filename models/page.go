package models

// Page represents one fixed-size slice of a filtered result set
// Example response:
//
//	{
//	  "items": [ ... ],
//	  "pageNumber": 3,
//	  "pageSize": 12,
//	  "totalItems": 30,
//	  "totalPages": 3
//	}
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// CatalogPageResponse represents the response for a catalog listing surface
type CatalogPageResponse struct {
	Page   Page[CatalogItem] `json:"page"`
	Facets FacetSet          `json:"facets"`
}
