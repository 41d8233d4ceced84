package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null" json:"categoryId"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	DurationMinutes int     `gorm:"not null" json:"durationMinutes"` // >= 15
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`
	MaxCapacity     int     `gorm:"default:1" json:"maxCapacity"` // simultaneous bookings per slot

	Category       Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Availabilities []Availability `gorm:"foreignKey:ServiceID" json:"availabilities,omitempty"`
	Bookings       []Booking      `gorm:"foreignKey:ServiceID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
