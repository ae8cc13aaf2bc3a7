// internal/search/criteria.go
package search

import "github.com/kserge2001/AfricanEstates/internal/models"

// Criteria is the transient filter request. Every field is optional; numeric
// fields are pointers so that "absent" and "zero" stay distinct all the way
// from the wire to the filter.
type Criteria struct {
	ListingType  string   `json:"listingType,omitempty" validate:"omitempty,oneof=sale rent"`
	Country      string   `json:"country,omitempty"`
	PropertyType string   `json:"propertyType,omitempty" validate:"omitempty,oneof=apartment house villa land commercial"`
	MinPrice     *float64 `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice     *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	Bedrooms     *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	MinArea      *float64 `json:"minArea,omitempty" validate:"omitempty,gte=0"`
	MaxArea      *float64 `json:"maxArea,omitempty" validate:"omitempty,gte=0"`
	Features     []string `json:"features,omitempty"`
	YearBuilt    *int     `json:"yearBuilt,omitempty" validate:"omitempty,gte=0"`
}

// IsZero reports whether no constraint is set at all.
func (c Criteria) IsZero() bool {
	return c.ListingType == "" && c.Country == "" && c.PropertyType == "" &&
		c.MinPrice == nil && c.MaxPrice == nil &&
		c.Bedrooms == nil && c.Bathrooms == nil &&
		c.MinArea == nil && c.MaxArea == nil &&
		len(c.Features) == 0 && c.YearBuilt == nil
}

// Matches reports whether the property satisfies every constraint the criteria
// carries. Lower-bound constraints on optional columns (bedrooms, bathrooms,
// area, yearBuilt) exclude records that do not carry the column at all.
func (c Criteria) Matches(p *models.Property) bool {
	if c.ListingType != "" && string(p.ListingType) != c.ListingType {
		return false
	}
	if c.Country != "" && p.Country != c.Country {
		return false
	}
	if c.PropertyType != "" && string(p.PropertyType) != c.PropertyType {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms < *c.Bedrooms) {
		return false
	}
	if c.Bathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms < *c.Bathrooms) {
		return false
	}
	if c.MinArea != nil && (p.Area == nil || *p.Area < *c.MinArea) {
		return false
	}
	if c.MaxArea != nil && (p.Area == nil || *p.Area > *c.MaxArea) {
		return false
	}
	if len(c.Features) > 0 {
		have := make(map[string]struct{})
		for _, tag := range p.FeatureSet() {
			have[tag] = struct{}{}
		}
		for _, tag := range c.Features {
			if _, ok := have[tag]; !ok {
				return false
			}
		}
	}
	if c.YearBuilt != nil && (p.YearBuilt == nil || *p.YearBuilt < *c.YearBuilt) {
		return false
	}
	return true
}
