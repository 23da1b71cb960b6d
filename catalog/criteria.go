package catalog

import (
	"slices"
	"strconv"
	"strings"

	"laptopshop/models"
)

// CriteriaKey returns a canonical string for criteria. Two criteria that select
// the same items (same sets regardless of order or duplicates, same normalized
// price range, same search text up to case) share a key.
func CriteriaKey(c models.FilterCriteria) string {
	var b strings.Builder

	brands := make([]string, 0, len(c.Brands))
	for _, id := range c.Brands {
		brands = append(brands, strconv.FormatInt(id, 10))
	}
	statuses := make([]string, 0, len(c.Statuses))
	for _, s := range c.Statuses {
		statuses = append(statuses, string(s))
	}

	writeSet(&b, "brand", brands)
	writeSet(&b, "cpu", c.CPUs)
	writeSet(&b, "ssd", c.SSDs)
	writeSet(&b, "gpu", c.GPUs)
	writeSet(&b, "screen", c.Screens)
	writeSet(&b, "status", statuses)

	r := c.PriceRange.Normalized()
	b.WriteString("price=")
	b.WriteString(strconv.FormatInt(r.Min, 10))
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(r.Max, 10))
	b.WriteString(";q=")
	b.WriteString(strconv.Quote(strings.ToLower(c.SearchText)))
	return b.String()
}

func writeSet(b *strings.Builder, name string, values []string) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	b.WriteString(name)
	b.WriteByte('=')
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(v))
	}
	b.WriteByte(';')
}

// CriteriaChanged reports whether next selects differently from prev
func CriteriaChanged(prev, next models.FilterCriteria) bool {
	return CriteriaKey(prev) != CriteriaKey(next)
}

// ResetPage returns the page number to request after moving from prev to next
// criteria: 1 when the criteria changed, current otherwise.
func ResetPage(prev, next models.FilterCriteria, current int) int {
	if CriteriaChanged(prev, next) || current < 1 {
		return 1
	}
	return current
}
