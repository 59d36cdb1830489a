package catalog

import (
	"github.com/vig-dev/catalog-service/internal/models"
	"github.com/vig-dev/catalog-service/internal/stores"
)

// Service aggregates the venue and event stores behind the operations the
// HTTP surface exposes. It carries no state of its own.
type Service struct {
	venues *stores.VenueStore
	events *stores.EventStore
}

func New(venues *stores.VenueStore, events *stores.EventStore) *Service {
	return &Service{venues: venues, events: events}
}

func (s *Service) CreateVenue(venue *models.Venue) (*models.Venue, error) {
	return s.venues.Create(venue)
}

func (s *Service) CreateEvent(event *models.Event) (*models.Event, error) {
	return s.events.Create(event)
}

func (s *Service) ListEvents(filters stores.EventFilters) ([]models.Event, error) {
	return s.events.List(filters)
}

func (s *Service) GetEventByID(id int) (*models.Event, error) {
	return s.events.GetByID(id)
}
