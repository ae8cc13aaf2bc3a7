// internal/models/common.go
package models

import "encoding/json"

// Enums
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

type PropertyStatus string

const (
	PropertyStatusActive PropertyStatus = "active"
	PropertyStatusSold   PropertyStatus = "sold"
	PropertyStatusRented PropertyStatus = "rented"
)

// EncodeStringArray serializes a list of strings into the JSON-string payload
// used for the features and images columns.
func EncodeStringArray(values []string) string {
	if len(values) == 0 {
		return ""
	}
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeStringArray parses a JSON-string array payload. Absent or malformed
// payloads decode to an empty list rather than an error, so a half-written
// record never breaks a listing page.
func DecodeStringArray(payload string) []string {
	if payload == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(payload), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}
