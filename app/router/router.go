package router

import (
	"net/http"

	"laptopshop/app/controller"
)

type Controllers struct {
	Catalog   *controller.CatalogController
	Component *controller.ComponentController
	Upgrade   *controller.UpgradeController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every endpoint on mux and returns it wrapped in the
// request id and access log middleware
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) http.Handler {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Public catalog
	mux.HandleFunc("/catalog/products", controllers.Catalog.Products)
	mux.HandleFunc("/catalog/facets", controllers.Catalog.Facets)

	// Admin catalog, inactive products included
	mux.HandleFunc("/admin/products", controllers.Catalog.AdminProducts)
	mux.HandleFunc("/admin/facets", controllers.Catalog.AdminFacets)

	// Component price list
	mux.HandleFunc("/components", controllers.Component.List)

	// Upgrade quoting
	mux.HandleFunc("/upgrade/quote", controllers.Upgrade.Quote)
	mux.HandleFunc("/upgrade/start", controllers.Upgrade.Start)
	mux.HandleFunc("/upgrade/select", controllers.Upgrade.Select)
	mux.HandleFunc("/upgrade/price", controllers.Upgrade.Price)
	mux.HandleFunc("/upgrade/booking", controllers.Upgrade.Booking)

	return RequestID(AccessLog(mux))
}
