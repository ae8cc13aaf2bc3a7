// internal/store/store_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

func newProperty(title, country string, price float64, featured bool) models.Property {
	return models.Property{
		Title:        title,
		Description:  "test listing",
		Price:        price,
		Country:      country,
		City:         "Test City",
		PropertyType: models.PropertyTypeHouse,
		ListingType:  models.ListingTypeSale,
		MainImage:    "https://example.com/main.jpg",
		Featured:     featured,
	}
}

func TestCreatePropertyAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.CreateProperty(newProperty("First", "Kenya", 100000, false), 1)
	require.NoError(t, err)
	second, err := s.CreateProperty(newProperty("Second", "Ghana", 200000, false), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, models.PropertyStatusActive, first.Status)
}

func TestCreatePropertySetsOwner(t *testing.T) {
	s := NewMemoryStore()

	created, err := s.CreateProperty(newProperty("Owned", "Kenya", 100000, false), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, created.UserID)

	fetched, err := s.GetProperty(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestGetPropertyNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetProperty(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllPropertiesInsertionOrder(t *testing.T) {
	s := NewMemoryStore()

	for _, title := range []string{"A", "B", "C"} {
		_, err := s.CreateProperty(newProperty(title, "Kenya", 100000, false), 1)
		require.NoError(t, err)
	}

	all := s.AllProperties()
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Title)
	assert.Equal(t, "B", all[1].Title)
	assert.Equal(t, "C", all[2].Title)
}

func TestFeaturedProperties(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateProperty(newProperty("Plain", "Kenya", 100000, false), 1)
	require.NoError(t, err)
	featured, err := s.CreateProperty(newProperty("Promoted", "Ghana", 200000, true), 1)
	require.NoError(t, err)

	result := s.FeaturedProperties()
	require.Len(t, result, 1)
	assert.Equal(t, featured.ID, result[0].ID)
}

func TestUserProperties(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateProperty(newProperty("Mine", "Kenya", 100000, false), 1)
	require.NoError(t, err)
	_, err = s.CreateProperty(newProperty("Theirs", "Ghana", 200000, false), 2)
	require.NoError(t, err)
	_, err = s.CreateProperty(newProperty("Also mine", "Egypt", 300000, false), 1)
	require.NoError(t, err)

	mine := s.UserProperties(1)
	require.Len(t, mine, 2)
	assert.Equal(t, "Mine", mine[0].Title)
	assert.Equal(t, "Also mine", mine[1].Title)
	assert.Empty(t, s.UserProperties(99))
}

func TestCreateUserAndLookup(t *testing.T) {
	s := NewMemoryStore()

	user, err := s.CreateUser(models.User{Username: "amina", Email: "amina@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "amina", byID.Username)

	byName, err := s.GetUserByUsername("amina")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateFinancingRequestAssignsIDs(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.CreateFinancingRequest(models.FinancingRequest{FullName: "Kwame Mensah"})
	require.NoError(t, err)
	second, err := s.CreateFinancingRequest(models.FinancingRequest{FullName: "Fatima Diallo"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestSeedLoadsDemoCatalog(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, Seed(s))

	all := s.AllProperties()
	require.Len(t, all, 6)
	assert.Equal(t, "Luxury Villa in Lagos", all[0].Title)
	assert.Equal(t, "Modern House in Dar es Salaam", all[5].Title)

	featured := s.FeaturedProperties()
	require.Len(t, featured, 3)
	assert.Equal(t, "Nigeria", featured[0].Country)
	assert.Equal(t, "South Africa", featured[1].Country)
	assert.Equal(t, "Tanzania", featured[2].Country)

	agent, err := s.GetUserByUsername("demo_agent")
	require.NoError(t, err)
	assert.True(t, agent.IsAgent)
	for _, p := range all {
		assert.Equal(t, agent.ID, p.UserID)
	}
}
