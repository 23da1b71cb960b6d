package controller

import (
	"net/http"

	"laptopshop/service"
)

// ComponentController handles HTTP requests for the component price list
type ComponentController struct {
	catalogService *service.CatalogService
}

// NewComponentController creates a new ComponentController
func NewComponentController(catalogService *service.CatalogService) *ComponentController {
	return &ComponentController{catalogService: catalogService}
}

// List handles GET /components?type=RAM&minPrice=&maxPrice=&q=&page=&pageSize=
func (c *ComponentController) List(w http.ResponseWriter, r *http.Request) {
	const op = "ListComponents"
	if !allowMethod(w, r, http.MethodGet, op) {
		return
	}

	q := r.URL.Query()
	criteria, err := componentCriteria(q)
	if err != nil {
		writeError(w, err, op)
		return
	}
	pageNumber, pageSize, err := pageParams(q)
	if err != nil {
		writeError(w, err, op)
		return
	}

	page, err := c.catalogService.Components(r.Context(), criteria, pageNumber, pageSize)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, page, op)
}
