package catalog

import (
	"errors"
	"fmt"

	"laptopshop/models"
)

// DefaultPageSize is the page size used by the storefront surfaces
const DefaultPageSize = 12

// ErrInvalidPage is returned when a caller passes a non-positive page size or number
var ErrInvalidPage = errors.New("invalid page")

// Paginate returns page pageNumber (1-based) of items, pageSize items per page.
// A page past the end is empty rather than an error, so a caller that forgot to
// reset to page 1 after changing criteria still gets a valid Page.
//
// Paginate is stateless. Whenever the filter criteria change, callers must go
// back to page 1 before paginating the new result (see ResetPage).
func Paginate[T any](items []T, pageSize, pageNumber int) (models.Page[T], error) {
	if pageSize <= 0 {
		return models.Page[T]{}, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidPage, pageSize)
	}
	if pageNumber <= 0 {
		return models.Page[T]{}, fmt.Errorf("%w: page number must be positive, got %d", ErrInvalidPage, pageNumber)
	}

	total := len(items)
	totalPages := TotalPages(total, pageSize)

	page := models.Page[T]{
		Items:      []T{},
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
	if pageNumber > totalPages {
		return page, nil
	}

	start := (pageNumber - 1) * pageSize
	end := min(start+pageSize, total)
	page.Items = items[start:end:end]
	return page, nil
}

// TotalPages is ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
