// internal/search/codec.go
package search

import (
	"net/url"
	"strconv"
	"strings"
)

// EncodeQuery maps the criteria onto URL query parameters so a result set is
// shareable and bookmarkable. Only present fields produce a parameter; the
// features set becomes one comma-joined value.
func EncodeQuery(c Criteria) url.Values {
	q := url.Values{}
	setString(q, "listingType", c.ListingType)
	setString(q, "country", c.Country)
	setString(q, "propertyType", c.PropertyType)
	setFloat(q, "minPrice", c.MinPrice)
	setFloat(q, "maxPrice", c.MaxPrice)
	setInt(q, "bedrooms", c.Bedrooms)
	setInt(q, "bathrooms", c.Bathrooms)
	setFloat(q, "minArea", c.MinArea)
	setFloat(q, "maxArea", c.MaxArea)
	if len(c.Features) > 0 {
		q.Set("features", strings.Join(c.Features, ","))
	}
	setInt(q, "yearBuilt", c.YearBuilt)
	return q
}

// DecodeQuery parses query parameters back into criteria. Absent or unparsable
// numeric parameters decode to absent fields, never to zero.
func DecodeQuery(q url.Values) Criteria {
	c := Criteria{
		ListingType:  q.Get("listingType"),
		Country:      q.Get("country"),
		PropertyType: q.Get("propertyType"),
		MinPrice:     parseFloat(q.Get("minPrice")),
		MaxPrice:     parseFloat(q.Get("maxPrice")),
		Bedrooms:     parseInt(q.Get("bedrooms")),
		Bathrooms:    parseInt(q.Get("bathrooms")),
		MinArea:      parseFloat(q.Get("minArea")),
		MaxArea:      parseFloat(q.Get("maxArea")),
		YearBuilt:    parseInt(q.Get("yearBuilt")),
	}
	if features := q.Get("features"); features != "" {
		c.Features = strings.Split(features, ",")
	}
	return c
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setFloat(q url.Values, key string, value *float64) {
	if value != nil {
		q.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

func setInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
