// internal/services/property_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kserge2001/AfricanEstates/internal/models"
	"github.com/kserge2001/AfricanEstates/internal/search"
	"github.com/kserge2001/AfricanEstates/internal/store"
)

type PropertyService struct {
	store store.Store
}

// CreatePropertyRequest carries the owner-submitted listing fields. Identity,
// ownership, status and the creation timestamp are assigned server-side; the
// featured flag is not accepted from the public API.
type CreatePropertyRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Bedrooms     *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Area         *float64 `json:"area,omitempty" validate:"omitempty,gt=0"`
	Country      string   `json:"country" validate:"required"`
	City         string   `json:"city" validate:"required"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Address      string   `json:"address,omitempty"`
	PropertyType string   `json:"propertyType" validate:"required,oneof=apartment house villa land commercial"`
	ListingType  string   `json:"listingType" validate:"required,oneof=sale rent"`
	YearBuilt    *int     `json:"yearBuilt,omitempty" validate:"omitempty,gte=0"`
	Features     string   `json:"features,omitempty"`
	MainImage    string   `json:"mainImage" validate:"required,url"`
	Images       string   `json:"images,omitempty"`
}

func NewPropertyService(s store.Store) *PropertyService {
	return &PropertyService{store: s}
}

// List returns the full table, re-ordered when a sort key is requested and in
// insertion order otherwise.
func (s *PropertyService) List(sortKey search.SortKey) []models.Property {
	properties := s.store.AllProperties()
	search.Sort(properties, sortKey)
	return properties
}

func (s *PropertyService) Featured(sortKey search.SortKey) []models.Property {
	properties := s.store.FeaturedProperties()
	search.Sort(properties, sortKey)
	return properties
}

func (s *PropertyService) Get(id int) (models.Property, error) {
	return s.store.GetProperty(id)
}

func (s *PropertyService) UserProperties(ownerID int) []models.Property {
	return s.store.UserProperties(ownerID)
}

// Search filters the current table snapshot and orders the matches. An empty
// result is success, not an error.
func (s *PropertyService) Search(criteria search.Criteria, sortKey search.SortKey) []models.Property {
	matched := search.Filter(s.store.AllProperties(), criteria)
	search.Sort(matched, sortKey)

	logrus.WithFields(logrus.Fields{
		"criteria_empty": criteria.IsZero(),
		"matched":        len(matched),
	}).Debug("Property search executed")

	return matched
}

func (s *PropertyService) Create(ownerID int, req *CreatePropertyRequest) (models.Property, error) {
	property := models.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		Country:      req.Country,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Address:      req.Address,
		PropertyType: models.PropertyType(req.PropertyType),
		ListingType:  models.ListingType(req.ListingType),
		YearBuilt:    req.YearBuilt,
		Features:     req.Features,
		MainImage:    req.MainImage,
		Images:       req.Images,
		Status:       models.PropertyStatusActive,
	}

	property, err := s.store.CreateProperty(property, ownerID)
	if err != nil {
		return models.Property{}, fmt.Errorf("failed to create property: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"property_id": property.ID,
		"owner_id":    ownerID,
		"country":     property.Country,
	}).Info("Property created")

	return property, nil
}
