// internal/search/filter.go
package search

import "github.com/kserge2001/AfricanEstates/internal/models"

// Filter returns the subset of properties satisfying every present constraint,
// preserving the input order. A linear scan is deliberate; the corpus is small
// and index structures are not worth carrying here.
func Filter(properties []models.Property, criteria Criteria) []models.Property {
	matched := make([]models.Property, 0, len(properties))
	for i := range properties {
		if criteria.Matches(&properties[i]) {
			matched = append(matched, properties[i])
		}
	}
	return matched
}
