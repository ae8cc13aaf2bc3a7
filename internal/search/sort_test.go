// internal/search/sort_test.go
package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

func pricedCatalog() []models.Property {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Property{
		{ID: 1, Price: 450000, CreatedAt: base},
		{ID: 2, Price: 220000, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Price: 380000, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func prices(properties []models.Property) []float64 {
	result := make([]float64, 0, len(properties))
	for _, p := range properties {
		result = append(result, p.Price)
	}
	return result
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
	assert.Equal(t, SortOldest, ParseSortKey("oldest"))
	assert.Equal(t, SortNewest, ParseSortKey("newest"))
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("bogus"))
}

func TestSortNoneLeavesInsertionOrder(t *testing.T) {
	catalog := pricedCatalog()
	Sort(catalog, SortNone)
	assert.Equal(t, []int{1, 2, 3}, ids(catalog))
}

func TestSortPriceAscending(t *testing.T) {
	catalog := pricedCatalog()
	Sort(catalog, SortPriceAsc)
	assert.Equal(t, []float64{220000, 380000, 450000}, prices(catalog))
}

func TestSortPriceDescending(t *testing.T) {
	catalog := pricedCatalog()
	Sort(catalog, SortPriceDesc)
	assert.Equal(t, []float64{450000, 380000, 220000}, prices(catalog))
}

func TestSortNewestFirst(t *testing.T) {
	catalog := pricedCatalog()
	Sort(catalog, SortNewest)
	assert.Equal(t, []int{3, 2, 1}, ids(catalog))
}

func TestSortOldestFirst(t *testing.T) {
	catalog := pricedCatalog()
	Sort(catalog, SortOldest)
	assert.Equal(t, []int{1, 2, 3}, ids(catalog))
}

func TestSortIsStableOnTies(t *testing.T) {
	when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog := []models.Property{
		{ID: 1, Price: 300000, CreatedAt: when},
		{ID: 2, Price: 300000, CreatedAt: when},
		{ID: 3, Price: 300000, CreatedAt: when},
	}

	Sort(catalog, SortPriceAsc)
	assert.Equal(t, []int{1, 2, 3}, ids(catalog))

	Sort(catalog, SortNewest)
	assert.Equal(t, []int{1, 2, 3}, ids(catalog))
}
