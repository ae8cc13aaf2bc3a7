// internal/handlers/property.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kserge2001/AfricanEstates/internal/models"
	"github.com/kserge2001/AfricanEstates/internal/search"
	"github.com/kserge2001/AfricanEstates/internal/services"
	"github.com/kserge2001/AfricanEstates/internal/store"
	"github.com/kserge2001/AfricanEstates/internal/utils"
	"github.com/kserge2001/AfricanEstates/internal/views"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// GET /api/properties
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	h.respondList(c, h.propertyService.List(sortParam(c)))
}

// GET /api/properties/featured
func (h *PropertyHandler) GetFeaturedProperties(c *gin.Context) {
	h.respondList(c, h.propertyService.Featured(sortParam(c)))
}

// GET /api/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", nil)
		return
	}

	property, err := h.propertyService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to fetch property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// POST /api/properties/search
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	var criteria search.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.BadRequestResponse(c, "Invalid search parameters", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&criteria)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.respondList(c, h.propertyService.Search(criteria, sortParam(c)))
}

// GET /api/properties/search
//
// Same operation as the POST variant, but criteria travel in the query string
// so a result page is a plain shareable URL.
func (h *PropertyHandler) SearchPropertiesByQuery(c *gin.Context) {
	criteria := search.DecodeQuery(c.Request.URL.Query())

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&criteria)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.respondList(c, h.propertyService.Search(criteria, sortParam(c)))
}

// POST /api/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	ownerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "You must be logged in to post a property")
		return
	}

	var req services.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid property data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	property, err := h.propertyService.Create(ownerID, &req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

// GET /api/user/:id/properties
func (h *PropertyHandler) GetUserProperties(c *gin.Context) {
	ownerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	h.respondList(c, h.propertyService.UserProperties(ownerID))
}

// sortParam reads the sort query parameter. When it is absent the result set
// stays in insertion order; re-ordering on the wire only happens on request.
func sortParam(c *gin.Context) search.SortKey {
	raw, ok := c.GetQuery("sort")
	if !ok {
		return search.SortNone
	}
	return search.ParseSortKey(raw)
}

// respondList writes the result set either as raw records or, when
// view=summary is requested, as display-ready cards.
func (h *PropertyHandler) respondList(c *gin.Context, properties []models.Property) {
	if c.Query("view") == "summary" {
		c.JSON(http.StatusOK, views.Summaries(properties, time.Now()))
		return
	}
	c.JSON(http.StatusOK, properties)
}
