package stores

import (
	"errors"

	"github.com/vig-dev/catalog-service/internal/models"
	"gorm.io/gorm"
)

type VenueStore struct {
	db *gorm.DB
}

func NewVenueStore(db *gorm.DB) *VenueStore {
	return &VenueStore{db: db}
}

func (s *VenueStore) Create(venue *models.Venue) (*models.Venue, error) {
	if err := s.db.Create(venue).Error; err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *VenueStore) Update(id int, patch map[string]interface{}) (int64, error) {
	result := s.db.Model(&models.Venue{}).Where("id = ?", id).Updates(patch)
	return result.RowsAffected, result.Error
}

func (s *VenueStore) Delete(id int) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Venue{})
	return result.RowsAffected, result.Error
}

func (s *VenueStore) FindByID(id int) (*models.Venue, error) {
	var venue models.Venue
	if err := s.db.Where("id = ?", id).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (s *VenueStore) FindAll() ([]models.Venue, error) {
	venues := make([]models.Venue, 0)
	if err := s.db.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (s *VenueStore) FindByCity(city string) ([]models.Venue, error) {
	venues := make([]models.Venue, 0)
	if err := s.db.Where("city = ?", city).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}
