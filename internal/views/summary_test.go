// internal/views/summary_test.go
package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$450,000", FormatPrice(450000))
	assert.Equal(t, "$1,250,500", FormatPrice(1250500))
	assert.Equal(t, "$900", FormatPrice(900))
	assert.Equal(t, "$380,000", FormatPrice(379999.75))
}

func TestTimeSince(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		listed time.Time
		want   string
	}{
		{now.Add(-30 * time.Second), "less than a minute"},
		{now.Add(-time.Minute), "1 minute"},
		{now.Add(-45 * time.Minute), "45 minutes"},
		{now.Add(-90 * time.Minute), "1 hour"},
		{now.Add(-26 * time.Hour), "1 day"},
		{now.Add(-3 * 24 * time.Hour), "3 days"},
		{now.Add(-70 * 24 * time.Hour), "2 months"},
		{now.Add(-800 * 24 * time.Hour), "2 years"},
		{now.Add(time.Hour), "less than a minute"}, // future timestamps clamp
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TimeSince(tc.listed, now))
	}
}

func TestNewSummary(t *testing.T) {
	bedrooms := 4
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	p := models.Property{
		ID:           1,
		Title:        "Luxury Villa in Lagos",
		Price:        450000,
		Bedrooms:     &bedrooms,
		Country:      "Nigeria",
		City:         "Lagos",
		Neighborhood: "Lekki",
		PropertyType: models.PropertyTypeVilla,
		ListingType:  models.ListingTypeSale,
		Features:     models.EncodeStringArray([]string{"Pool", "Garden"}),
		MainImage:    "https://example.com/main.jpg",
		Featured:     true,
		Status:       models.PropertyStatusActive,
		CreatedAt:    now.Add(-3 * 24 * time.Hour),
	}

	summary := NewSummary(&p, now)

	assert.Equal(t, "$450,000", summary.Price)
	assert.Equal(t, "Lekki, Lagos, Nigeria", summary.Location)
	assert.Equal(t, "3 days", summary.ListedAgo)
	assert.Equal(t, []string{"Pool", "Garden"}, summary.Features)
	assert.True(t, summary.Featured)
}

func TestNewSummaryDegradesOnMalformedPayloads(t *testing.T) {
	now := time.Now()
	p := models.Property{
		ID:        2,
		Title:     "Broken record",
		Price:     100000,
		Country:   "Kenya",
		City:      "Nairobi",
		Features:  "{not valid json",
		Images:    "[truncated",
		CreatedAt: now.Add(-time.Hour),
	}

	summary := NewSummary(&p, now)

	assert.Equal(t, []string{}, summary.Features)
	assert.Equal(t, []string{}, summary.Images)
	assert.Equal(t, "Nairobi, Kenya", summary.Location)
}

func TestSummariesShareRenderInstant(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	catalog := []models.Property{
		{ID: 1, Price: 100, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 2, Price: 200, CreatedAt: now.Add(-48 * time.Hour)},
	}

	summaries := Summaries(catalog, now)
	assert.Len(t, summaries, 2)
	assert.Equal(t, "1 day", summaries[0].ListedAgo)
	assert.Equal(t, "2 days", summaries[1].ListedAgo)
}
