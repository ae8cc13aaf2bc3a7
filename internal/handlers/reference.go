// internal/handlers/reference.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static reference data served to the search and financing forms.
var countries = []string{
	"Nigeria", "Kenya", "South Africa", "Ghana", "Egypt",
	"Tanzania", "Morocco", "Algeria", "Ethiopia", "Uganda",
	"Rwanda", "Senegal", "Ivory Coast", "Cameroon", "Namibia",
}

var currencies = []string{
	"USD", "EUR", "GBP", "NGN", "KES", "ZAR", "GHS", "EGP", "TZS", "MAD",
}

// GET /api/countries
func GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, countries)
}

// GET /api/currencies
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, currencies)
}
