// internal/search/sort.go
package search

import (
	"sort"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

type SortKey string

const (
	// SortNone leaves the result set in storage (insertion) order.
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
)

// ParseSortKey maps a request parameter to a sort key, falling back to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortOldest:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Sort orders the slice in place. The sort is stable: ties keep their relative
// (insertion) order. SortNone is a no-op.
func Sort(properties []models.Property, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Price < properties[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Price > properties[j].Price
		})
	case SortOldest:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].CreatedAt.Before(properties[j].CreatedAt)
		})
	case SortNewest:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].CreatedAt.After(properties[j].CreatedAt)
		})
	}
}
