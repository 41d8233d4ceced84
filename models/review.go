package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one-to-one with Booking; the unique index backs the
// at-most-one-review invariant alongside the application pre-check.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"bookingId"`

	Rating     int    `gorm:"not null" json:"rating"` // 1..5 stars
	Comment    string `gorm:"type:text" json:"comment"`
	IsVerified bool   `gorm:"default:true" json:"isVerified"` // booking existence is the verification signal

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
