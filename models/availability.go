package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday numbering follows the availability table convention: 0=Monday .. 6=Sunday.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Availability is a weekly open window for a service. At most one row
// per (service, weekday), enforced by the unique index.
type Availability struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_weekday,priority:1" json:"serviceId"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_service_weekday,priority:2" json:"dayOfWeek"`

	StartTime   string `gorm:"type:varchar(5);not null" json:"startTime"` // "HH:MM"
	EndTime     string `gorm:"type:varchar(5);not null" json:"endTime"`   // "HH:MM"
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

func (a *Availability) DayName() string {
	if a.DayOfWeek < 0 || a.DayOfWeek > 6 {
		return ""
	}
	return DayNames[a.DayOfWeek]
}

// Contains reports whether t ("HH:MM") falls inside the window.
// Both bounds are inclusive; zero-padded times compare correctly as strings.
func (a *Availability) Contains(t string) bool {
	return a.StartTime <= t && t <= a.EndTime
}
