package controller

import (
	"net/http"

	"laptopshop/logx"
	"laptopshop/service"
)

// CatalogController handles HTTP requests for the laptop catalog
type CatalogController struct {
	catalogService *service.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Products handles GET /catalog/products
// Query: brand (repeatable or comma separated), cpu, ssd, gpu, screen (repeatable), minPrice, maxPrice, q, page, pageSize
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	c.browse(w, r, service.SurfacePublic, "Products")
}

// AdminProducts handles GET /admin/products
// Same query as Products plus status (active, inactive)
func (c *CatalogController) AdminProducts(w http.ResponseWriter, r *http.Request) {
	c.browse(w, r, service.SurfaceAdmin, "AdminProducts")
}

func (c *CatalogController) browse(w http.ResponseWriter, r *http.Request, surface service.Surface, op string) {
	if !allowMethod(w, r, http.MethodGet, op) {
		return
	}

	q := r.URL.Query()
	criteria, err := filterCriteria(q, surface == service.SurfaceAdmin)
	if err != nil {
		writeError(w, err, op)
		return
	}
	pageNumber, pageSize, err := pageParams(q)
	if err != nil {
		writeError(w, err, op)
		return
	}

	resp, err := c.catalogService.Browse(r.Context(), surface, criteria, pageNumber, pageSize)
	if err != nil {
		writeError(w, err, op)
		return
	}

	logx.Info().
		Int("items", len(resp.Page.Items)).
		Int("total", resp.Page.TotalItems).
		Msgf("✅ %s: page %d/%d", op, resp.Page.PageNumber, resp.Page.TotalPages)
	writeJSON(w, http.StatusOK, resp, op)
}

// Facets handles GET /catalog/facets
func (c *CatalogController) Facets(w http.ResponseWriter, r *http.Request) {
	c.facets(w, r, service.SurfacePublic, "Facets")
}

// AdminFacets handles GET /admin/facets
func (c *CatalogController) AdminFacets(w http.ResponseWriter, r *http.Request) {
	c.facets(w, r, service.SurfaceAdmin, "AdminFacets")
}

func (c *CatalogController) facets(w http.ResponseWriter, r *http.Request, surface service.Surface, op string) {
	if !allowMethod(w, r, http.MethodGet, op) {
		return
	}

	facets, err := c.catalogService.Facets(r.Context(), surface)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, facets, op)
}
