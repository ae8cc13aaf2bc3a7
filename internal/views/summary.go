// internal/views/summary.go
package views

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

// Summary is the display-ready card for one listing: localized price, decoded
// feature/image lists and a relative listing age.
type Summary struct {
	ID           int                   `json:"id"`
	Title        string                `json:"title"`
	Price        string                `json:"price"`
	Location     string                `json:"location"`
	Bedrooms     *int                  `json:"bedrooms,omitempty"`
	Bathrooms    *int                  `json:"bathrooms,omitempty"`
	Area         *float64              `json:"area,omitempty"`
	PropertyType models.PropertyType   `json:"propertyType"`
	ListingType  models.ListingType    `json:"listingType"`
	MainImage    string                `json:"mainImage"`
	Images       []string              `json:"images"`
	Features     []string              `json:"features"`
	Featured     bool                  `json:"featured"`
	Status       models.PropertyStatus `json:"status"`
	ListedAgo    string                `json:"listedAgo"`
}

var usd = message.NewPrinter(language.AmericanEnglish)

// NewSummary maps a property record into its card view. ListedAgo is relative
// to now and must be recomputed on every render.
func NewSummary(p *models.Property, now time.Time) Summary {
	return Summary{
		ID:           p.ID,
		Title:        p.Title,
		Price:        FormatPrice(p.Price),
		Location:     formatLocation(p),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		PropertyType: p.PropertyType,
		ListingType:  p.ListingType,
		MainImage:    p.MainImage,
		Images:       p.ImageList(),
		Features:     p.FeatureSet(),
		Featured:     p.Featured,
		Status:       p.Status,
		ListedAgo:    TimeSince(p.CreatedAt, now),
	}
}

// Summaries maps a result set, reusing one render instant for the whole page.
func Summaries(properties []models.Property, now time.Time) []Summary {
	summaries := make([]Summary, 0, len(properties))
	for i := range properties {
		summaries = append(summaries, NewSummary(&properties[i], now))
	}
	return summaries
}

// FormatPrice renders a USD amount with grouping and no decimal places,
// e.g. 450000 -> "$450,000".
func FormatPrice(amount float64) string {
	return usd.Sprintf("$%d", int64(math.Round(amount)))
}

// TimeSince renders the duration between t and now as a coarse human phrase
// ("3 days", "1 hour"). Future timestamps clamp to the smallest bucket.
func TimeSince(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d < 365*24*time.Hour:
		return plural(int(d.Hours()/(24*30)), "month")
	default:
		return plural(int(d.Hours()/(24*365)), "year")
	}
}

func plural(n int, unit string) string {
	if n <= 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func formatLocation(p *models.Property) string {
	if p.Neighborhood != "" {
		return fmt.Sprintf("%s, %s, %s", p.Neighborhood, p.City, p.Country)
	}
	return fmt.Sprintf("%s, %s", p.City, p.Country)
}
