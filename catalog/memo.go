package catalog

import (
	"strconv"
	"sync"

	"laptopshop/models"
)

// DefaultMemoSize bounds the number of cached filter results
const DefaultMemoSize = 256

// Memo caches Filter and ExtractFacets results by (snapshot version, criteria).
// Snapshots without a Version have no identity and are never cached.
// Cached slices are shared between callers and must be treated as read-only.
type Memo struct {
	mu      sync.Mutex
	size    int
	filters map[string][]models.CatalogItem
	facets  map[string]models.FacetSet
	order   []string
}

// NewMemo creates a Memo holding at most size filter results
func NewMemo(size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	return &Memo{
		size:    size,
		filters: make(map[string][]models.CatalogItem),
		facets:  make(map[string]models.FacetSet),
	}
}

// Filter is a memoised catalog.Filter over snapshot.Items
func (m *Memo) Filter(snapshot models.InventorySnapshot, criteria models.FilterCriteria) []models.CatalogItem {
	if snapshot.Version == "" {
		return Filter(snapshot.Items, criteria)
	}
	key := snapshot.Version + "|" + CriteriaKey(criteria)

	m.mu.Lock()
	if items, ok := m.filters[key]; ok {
		m.mu.Unlock()
		return items
	}
	m.mu.Unlock()

	items := Filter(snapshot.Items, criteria)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.filters[key]; !ok {
		m.evictLocked()
		m.filters[key] = items
		m.order = append(m.order, key)
	}
	return items
}

// Facets is a memoised catalog.ExtractFacets over snapshot.Items
func (m *Memo) Facets(snapshot models.InventorySnapshot, upperBound int64) models.FacetSet {
	if snapshot.Version == "" {
		return ExtractFacets(snapshot.Items, upperBound)
	}
	key := snapshot.Version + "|" + strconv.FormatInt(upperBound, 10)

	m.mu.Lock()
	defer m.mu.Unlock()
	if fs, ok := m.facets[key]; ok {
		return fs
	}
	// facets of stale snapshots are never asked for again
	if len(m.facets) >= m.size {
		clear(m.facets)
	}
	fs := ExtractFacets(snapshot.Items, upperBound)
	m.facets[key] = fs
	return fs
}

// Len returns the number of cached filter results
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.filters)
}

func (m *Memo) evictLocked() {
	for len(m.order) >= m.size {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.filters, oldest)
	}
}
