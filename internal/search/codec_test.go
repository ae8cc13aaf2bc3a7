// internal/search/codec_test.go
package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuerySkipsAbsentFields(t *testing.T) {
	q := EncodeQuery(Criteria{Country: "Kenya"})

	assert.Equal(t, "Kenya", q.Get("country"))
	assert.Len(t, q, 1)
}

func TestEncodeQueryJoinsFeatures(t *testing.T) {
	q := EncodeQuery(Criteria{Features: []string{"Pool", "Garden"}})
	assert.Equal(t, "Pool,Garden", q.Get("features"))
}

func TestDecodeQueryParsesNumbers(t *testing.T) {
	q, err := url.ParseQuery("minPrice=300000&maxPrice=400000&bedrooms=3&yearBuilt=2015")
	require.NoError(t, err)

	c := DecodeQuery(q)
	require.NotNil(t, c.MinPrice)
	assert.Equal(t, 300000.0, *c.MinPrice)
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 400000.0, *c.MaxPrice)
	require.NotNil(t, c.Bedrooms)
	assert.Equal(t, 3, *c.Bedrooms)
	require.NotNil(t, c.YearBuilt)
	assert.Equal(t, 2015, *c.YearBuilt)
}

func TestDecodeQueryUnparsableNumberIsAbsent(t *testing.T) {
	q, err := url.ParseQuery("minPrice=cheap&bedrooms=")
	require.NoError(t, err)

	c := DecodeQuery(q)
	assert.Nil(t, c.MinPrice)
	assert.Nil(t, c.Bedrooms)
}

func TestDecodeQuerySplitsFeatures(t *testing.T) {
	q, err := url.ParseQuery("features=Pool,Garden,Security")
	require.NoError(t, err)

	c := DecodeQuery(q)
	assert.Equal(t, []string{"Pool", "Garden", "Security"}, c.Features)
}

func TestDecodeQueryAbsentFieldsStayAbsent(t *testing.T) {
	c := DecodeQuery(url.Values{})
	assert.True(t, c.IsZero())
}

func TestCriteriaRoundTrip(t *testing.T) {
	original := Criteria{
		ListingType:  "sale",
		Country:      "Nigeria",
		PropertyType: "villa",
		MinPrice:     floatPtr(100000),
		MaxPrice:     floatPtr(500000),
		Bedrooms:     intPtr(3),
		Bathrooms:    intPtr(2),
		MinArea:      floatPtr(150),
		MaxArea:      floatPtr(400),
		Features:     []string{"Pool", "Security"},
		YearBuilt:    intPtr(2015),
	}

	decoded := DecodeQuery(EncodeQuery(original))
	assert.Equal(t, original, decoded)
}

func TestQueryStringRoundTrip(t *testing.T) {
	q, err := url.ParseQuery("listingType=rent&country=Ghana&minPrice=80000&features=Garden,Garage")
	require.NoError(t, err)

	reencoded := EncodeQuery(DecodeQuery(q))
	assert.Equal(t, q, reencoded)
}
