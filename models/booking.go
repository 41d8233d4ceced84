package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity-spa-backend/utils"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

// statusTransitions defines the allowed lifecycle moves. completed,
// cancelled and no_show are terminal.
var statusTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_user_date,priority:1;not null" json:"userId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	BookingDate time.Time `gorm:"type:date;index:idx_user_date,priority:2;index:idx_status_date,priority:2;not null" json:"bookingDate"`
	BookingTime string    `gorm:"type:varchar(5);not null" json:"bookingTime"` // "HH:MM"
	Status      string    `gorm:"type:varchar(20);index:idx_status_date,priority:1;default:'pending'" json:"status"`

	// Contact details captured at booking time
	ContactPhone string `gorm:"type:varchar(20);not null" json:"contactPhone"`
	Notes        string `gorm:"type:text" json:"notes"`

	// Payment. TotalPrice is a snapshot of the service price at creation
	// and never tracks later price changes.
	TotalPrice  float64    `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Paid        bool       `gorm:"default:false" json:"paid"`
	PaymentDate *time.Time `json:"paymentDate"`

	CancelledAt        *time.Time `json:"cancelledAt"`
	CancellationReason string     `gorm:"type:text" json:"cancellationReason"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Review  *Review `gorm:"foreignKey:BookingID" json:"review,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// ScheduledAt combines booking date and start time into one instant.
func (b *Booking) ScheduledAt() time.Time {
	return utils.CombineDateTime(b.BookingDate, b.BookingTime)
}

// IsPast is recomputed on every read, never stored.
func (b *Booking) IsPast() bool {
	return b.ScheduledAt().Before(time.Now())
}

// EndTime derives the finish time from the current service duration.
// Requires b.Service to be loaded. Recomputed on read: historical
// bookings keep their price snapshot but not their duration.
func (b *Booking) EndTime() string {
	end := b.ScheduledAt().Add(time.Duration(b.Service.DurationMinutes) * time.Minute)
	return end.Format("15:04")
}

// CanTransitionTo reports whether the lifecycle allows moving to status.
func (b *Booking) CanTransitionTo(status string) bool {
	for _, next := range statusTransitions[b.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// CanBeCancelled: only pending/confirmed bookings whose slot has not
// passed yet may be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return (b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed) && !b.IsPast()
}

// Cancel marks the booking cancelled in memory and reports whether the
// cancellation was allowed. The caller persists on success; on failure
// nothing is mutated.
func (b *Booking) Cancel(reason string) bool {
	if !b.CanBeCancelled() {
		return false
	}
	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	b.CancellationReason = reason
	return true
}
