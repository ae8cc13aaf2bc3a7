// internal/models/property.go
package models

import "time"

// Property is one listing. The features and images columns hold JSON-string
// encoded arrays; that encoding is part of the wire contract and is only
// unpacked at the presentation boundary.
type Property struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	Bedrooms     *int           `json:"bedrooms,omitempty"`
	Bathrooms    *int           `json:"bathrooms,omitempty"`
	Area         *float64       `json:"area,omitempty"`
	Country      string         `json:"country"`
	City         string         `json:"city"`
	Neighborhood string         `json:"neighborhood,omitempty"`
	Address      string         `json:"address,omitempty"`
	PropertyType PropertyType   `json:"propertyType"`
	ListingType  ListingType    `json:"listingType"`
	YearBuilt    *int           `json:"yearBuilt,omitempty"`
	Features     string         `json:"features,omitempty"`
	MainImage    string         `json:"mainImage"`
	Images       string         `json:"images,omitempty"`
	UserID       int            `json:"userId"`
	Featured     bool           `json:"featured"`
	Status       PropertyStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FeatureSet returns the decoded feature tags. An absent payload yields an
// empty set, so subset matching against it correctly rejects any non-empty
// criteria.
func (p *Property) FeatureSet() []string {
	return DecodeStringArray(p.Features)
}

// ImageList returns the decoded gallery URLs. MainImage is always present on
// the record itself and may or may not be repeated here.
func (p *Property) ImageList() []string {
	return DecodeStringArray(p.Images)
}

func (p *Property) HasFeature(tag string) bool {
	for _, f := range p.FeatureSet() {
		if f == tag {
			return true
		}
	}
	return false
}
