package stores

import (
	"errors"

	"github.com/vig-dev/catalog-service/internal/models"
	"gorm.io/gorm"
)

// EventFilters are ANDed exact-match predicates; empty fields impose no
// constraint. City matches on the owning venue's city.
type EventFilters struct {
	City   string
	Type   string
	Status string
}

type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Create(event *models.Event) (*models.Event, error) {
	if event.Status == "" {
		event.Status = models.StatusOnSale
	}

	if err := s.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventStore) Update(id int, patch map[string]interface{}) (int64, error) {
	result := s.db.Model(&models.Event{}).Where("id = ?", id).Updates(patch)
	return result.RowsAffected, result.Error
}

func (s *EventStore) Delete(id int) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Event{})
	return result.RowsAffected, result.Error
}

func (s *EventStore) List(filters EventFilters) ([]models.Event, error) {
	query := s.db.Model(&models.Event{}).Preload("Venue")

	if filters.Type != "" {
		query = query.Where("events.type = ?", filters.Type)
	}
	if filters.Status != "" {
		query = query.Where("events.status = ?", filters.Status)
	}
	if filters.City != "" {
		// events.* keeps the joined venues columns out of the scan
		query = query.Select("events.*").
			Joins("JOIN venues ON venues.id = events.venue_id").
			Where("venues.city = ?", filters.City)
	}

	events := make([]models.Event, 0)
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) GetByID(id int) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Venue").Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}
