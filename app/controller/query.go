package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"laptopshop/errx"
	"laptopshop/models"
)

// labels returns every non-empty value of a repeated key (?cpu=a&cpu=b).
// Spec labels are free text and may contain commas, so values are never split.
func labels(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// list returns every non-empty value of an id or enum key, accepting both
// repeated keys (?brand=1&brand=2) and comma lists (?brand=1,2)
func list(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intParam(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errx.BadRequest(err, fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}

func int64Param(q url.Values, key string) (int64, bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false, errx.BadRequest(fmt.Errorf("invalid %s %q", key, raw), fmt.Sprintf("%s must be a non-negative integer", key))
	}
	return n, true, nil
}

// pageParams reads page (default 1) and pageSize (default 0, the service default)
func pageParams(q url.Values) (pageNumber, pageSize int, err error) {
	pageNumber, err = intParam(q, "page")
	if err != nil {
		return 0, 0, err
	}
	if q.Get("page") == "" {
		pageNumber = 1
	}
	pageSize, err = intParam(q, "pageSize")
	if err != nil {
		return 0, 0, err
	}
	if q.Get("pageSize") != "" && pageSize <= 0 {
		return 0, 0, errx.BadRequest(fmt.Errorf("invalid pageSize %d", pageSize), "pageSize must be positive")
	}
	return pageNumber, pageSize, nil
}

func priceRange(q url.Values) (models.PriceRange, error) {
	r := models.AnyPrice()
	lo, ok, err := int64Param(q, "minPrice")
	if err != nil {
		return r, err
	}
	if ok {
		r.Min = lo
	}
	hi, ok, err := int64Param(q, "maxPrice")
	if err != nil {
		return r, err
	}
	if ok {
		r.Max = hi
	}
	return r, nil
}

// filterCriteria builds catalog criteria from the query string.
// statuses are only read when withStatus is set.
func filterCriteria(q url.Values, withStatus bool) (models.FilterCriteria, error) {
	c := models.NewFilterCriteria()

	for _, raw := range list(q, "brand") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c, errx.BadRequest(err, "brand must be an integer id")
		}
		c.Brands = append(c.Brands, id)
	}
	c.CPUs = labels(q, "cpu")
	c.SSDs = labels(q, "ssd")
	c.GPUs = labels(q, "gpu")
	c.Screens = labels(q, "screen")
	c.SearchText = strings.TrimSpace(q.Get("q"))

	if withStatus {
		for _, raw := range list(q, "status") {
			status := models.ProductStatus(strings.ToLower(raw))
			if status != models.StatusActive && status != models.StatusInactive {
				return c, errx.BadRequest(fmt.Errorf("invalid status %q", raw), "status must be active or inactive")
			}
			c.Statuses = append(c.Statuses, status)
		}
	}

	r, err := priceRange(q)
	if err != nil {
		return c, err
	}
	c.PriceRange = r
	return c, nil
}

func componentCriteria(q url.Values) (models.ComponentCriteria, error) {
	c := models.NewComponentCriteria()
	for _, raw := range list(q, "type") {
		c.Types = append(c.Types, models.ComponentType(strings.ToUpper(raw)))
	}
	c.SearchText = strings.TrimSpace(q.Get("q"))

	r, err := priceRange(q)
	if err != nil {
		return c, err
	}
	c.PriceRange = r
	return c, nil
}
