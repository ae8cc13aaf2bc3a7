// internal/store/store.go
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Store is the authoritative table of users, properties and financing leads
// for the process lifetime. It performs no validation; callers are expected to
// hand it well-formed records.
type Store interface {
	CreateUser(user models.User) (models.User, error)
	GetUser(id int) (models.User, error)
	GetUserByUsername(username string) (models.User, error)

	CreateProperty(property models.Property, ownerID int) (models.Property, error)
	GetProperty(id int) (models.Property, error)
	AllProperties() []models.Property
	FeaturedProperties() []models.Property
	UserProperties(ownerID int) []models.Property

	CreateFinancingRequest(request models.FinancingRequest) (models.FinancingRequest, error)
}

// MemoryStore keeps everything in maps guarded by a RWMutex. Ids are assigned
// from per-table monotonic counters starting at 1 and are never reused.
// Listing operations return copies in insertion order (ascending id).
type MemoryStore struct {
	mtx sync.RWMutex

	users      map[int]models.User
	properties map[int]models.Property
	financing  map[int]models.FinancingRequest

	nextUserID      int
	nextPropertyID  int
	nextFinancingID int

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:           make(map[int]models.User),
		properties:      make(map[int]models.Property),
		financing:       make(map[int]models.FinancingRequest),
		nextUserID:      1,
		nextPropertyID:  1,
		nextFinancingID: 1,
		now:             time.Now,
	}
}

func (s *MemoryStore) CreateUser(user models.User) (models.User, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = s.now().UTC()
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) GetUser(id int) (models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := 1; i < s.nextUserID; i++ {
		if user, ok := s.users[i]; ok && user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) CreateProperty(property models.Property, ownerID int) (models.Property, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	property.ID = s.nextPropertyID
	s.nextPropertyID++
	property.UserID = ownerID
	property.CreatedAt = s.now().UTC()
	if property.Status == "" {
		property.Status = models.PropertyStatusActive
	}
	s.properties[property.ID] = property
	return property, nil
}

func (s *MemoryStore) GetProperty(id int) (models.Property, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	property, ok := s.properties[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}
	return property, nil
}

func (s *MemoryStore) AllProperties() []models.Property {
	return s.scanProperties(func(models.Property) bool { return true })
}

func (s *MemoryStore) FeaturedProperties() []models.Property {
	return s.scanProperties(func(p models.Property) bool { return p.Featured })
}

func (s *MemoryStore) UserProperties(ownerID int) []models.Property {
	return s.scanProperties(func(p models.Property) bool { return p.UserID == ownerID })
}

// scanProperties walks the table in id order under a read lock and copies out
// every record the predicate accepts, so callers never see a torn snapshot.
func (s *MemoryStore) scanProperties(keep func(models.Property) bool) []models.Property {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	matched := make([]models.Property, 0, len(s.properties))
	for i := 1; i < s.nextPropertyID; i++ {
		if property, ok := s.properties[i]; ok && keep(property) {
			matched = append(matched, property)
		}
	}
	return matched
}

func (s *MemoryStore) CreateFinancingRequest(request models.FinancingRequest) (models.FinancingRequest, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	request.ID = s.nextFinancingID
	s.nextFinancingID++
	request.CreatedAt = s.now().UTC()
	s.financing[request.ID] = request
	return request, nil
}
