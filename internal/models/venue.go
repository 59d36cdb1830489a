package models

type Venue struct {
	ID       int     `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	City     *string `json:"city"`
	Address  *string `json:"address"`
	Capacity *int    `json:"capacity"`
	Events   []Event `json:"events,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (Venue) TableName() string {
	return "venues"
}
