package models

import (
	"time"
)

const (
	StatusOnSale    = "ON_SALE"
	StatusSoldOut   = "SOLD_OUT"
	StatusCancelled = "CANCELLED"
)

type Event struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	VenueID     int        `json:"venue_id" gorm:"not null"`
	Venue       *Venue     `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
	Title       string     `json:"title" gorm:"not null"`
	Type        *string    `json:"type"`
	StartTime   time.Time  `json:"start_time" gorm:"not null"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status" gorm:"not null;default:ON_SALE"`
	Description *string    `json:"description"`
}

func (Event) TableName() string {
	return "events"
}
