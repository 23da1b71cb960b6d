package catalog

import (
	"testing"

	"laptopshop/models"
)

func TestCriteriaKeyIgnoresOrderAndDuplicates(t *testing.T) {
	a := models.NewFilterCriteria()
	a.CPUs = []string{"i5", "i7"}
	a.Brands = []int64{2, 1}
	a.SearchText = "Acer"

	b := models.NewFilterCriteria()
	b.CPUs = []string{"i7", "i5", "i7"}
	b.Brands = []int64{1, 2}
	b.SearchText = "acer"

	if CriteriaKey(a) != CriteriaKey(b) {
		t.Errorf("keys differ:\n%s\n%s", CriteriaKey(a), CriteriaKey(b))
	}
	if CriteriaChanged(a, b) {
		t.Error("CriteriaChanged should be false for equivalent criteria")
	}
}

func TestCriteriaKeyDistinguishesDimensions(t *testing.T) {
	a := models.NewFilterCriteria()
	a.CPUs = []string{"x"}
	b := models.NewFilterCriteria()
	b.GPUs = []string{"x"}

	if !CriteriaChanged(a, b) {
		t.Error("same value in different dimensions must produce different keys")
	}
}

func TestCriteriaKeyNormalizesPriceRange(t *testing.T) {
	a := models.FilterCriteria{PriceRange: models.PriceRange{Min: 10, Max: 5}}
	b := models.FilterCriteria{PriceRange: models.PriceRange{Min: 5, Max: 10}}
	if CriteriaChanged(a, b) {
		t.Error("inverted and normalized ranges should share a key")
	}
}

func TestResetPage(t *testing.T) {
	prev := models.NewFilterCriteria()
	next := prev
	next.SearchText = "nitro"

	if got := ResetPage(prev, prev, 3); got != 3 {
		t.Errorf("unchanged criteria: got page %d, want 3", got)
	}
	if got := ResetPage(prev, next, 3); got != 1 {
		t.Errorf("changed criteria: got page %d, want 1", got)
	}
	if got := ResetPage(prev, prev, 0); got != 1 {
		t.Errorf("invalid page: got %d, want 1", got)
	}
}
