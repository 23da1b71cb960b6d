package catalog

import "laptopshop/models"

// ExtractFacets derives the selectable values of every spec dimension from items.
// Each list holds the distinct non-empty labels in first-seen order. MinPrice and
// MaxPrice span the items priced above zero; when there are none the range falls
// back to [0, upperBound].
//
// Facets are always computed from the slice passed in. Callers pass the whole
// inventory snapshot, so selecting a filter does not narrow the facet menus.
func ExtractFacets(items []models.CatalogItem, upperBound int64) models.FacetSet {
	cpus := newDistinct()
	gpus := newDistinct()
	rams := newDistinct()
	ssds := newDistinct()
	screens := newDistinct()

	var minPrice, maxPrice int64
	priced := false

	for _, item := range items {
		cpus.add(item.Specs.CPU)
		gpus.add(item.Specs.GPU)
		rams.add(item.Specs.RAM)
		ssds.add(item.Specs.SSD)
		screens.add(item.Specs.Screen)

		if item.Price <= 0 {
			continue
		}
		if !priced {
			minPrice, maxPrice = item.Price, item.Price
			priced = true
			continue
		}
		if item.Price < minPrice {
			minPrice = item.Price
		}
		if item.Price > maxPrice {
			maxPrice = item.Price
		}
	}

	if !priced {
		minPrice, maxPrice = 0, upperBound
	}

	return models.FacetSet{
		CPUs:     cpus.values,
		GPUs:     gpus.values,
		RAMs:     rams.values,
		SSDs:     ssds.values,
		Screens:  screens.values,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
}

// distinct keeps first-seen order of unique non-empty labels
type distinct struct {
	seen   map[string]struct{}
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: make(map[string]struct{}), values: []string{}}
}

func (d *distinct) add(v string) {
	if v == "" {
		return
	}
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.values = append(d.values, v)
}
