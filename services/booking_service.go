// services/booking_service.go
package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity-spa-backend/models"
	"serenity-spa-backend/utils"
)

// BookingService owns booking creation, cancellation and the staff
// lifecycle transitions. All mutations run against the injected DB so
// tests can swap in an in-memory database.
type BookingService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewBookingService(db *gorm.DB, notifier Notifier) *BookingService {
	return &BookingService{db: db, notifier: notifier}
}

type CreateBookingInput struct {
	BookingDate  time.Time
	BookingTime  string
	ContactPhone string
	Notes        string
}

// Create validates the candidate slot and inserts the booking. The
// whole check-then-insert sequence runs in one serializable transaction
// so two near-simultaneous requests cannot both take the last slot.
//
// Rules, short-circuiting on first failure: not in the past, enabled
// availability window for the weekday, time inside the window (both
// bounds inclusive), active pending/confirmed bookings below
// max_capacity.
func (s *BookingService) Create(userID uuid.UUID, service *models.Service, input CreateBookingInput) (*models.Booking, error) {
	if !utils.ValidateTimeOfDay(input.BookingTime) {
		return nil, ErrInvalidTime
	}

	booking := &models.Booking{
		UserID:       userID,
		ServiceID:    service.ID,
		BookingDate:  utils.BeginningOfDay(input.BookingDate),
		BookingTime:  input.BookingTime,
		Status:       models.BookingStatusPending,
		ContactPhone: input.ContactPhone,
		Notes:        input.Notes,
		TotalPrice:   service.Price, // price snapshot, never updated later
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if booking.ScheduledAt().Before(time.Now()) {
			return ErrBookingInPast
		}

		var availability models.Availability
		err := tx.Where("service_id = ? AND day_of_week = ? AND is_available = ?",
			service.ID, utils.WeekdayIndex(booking.BookingDate), true).
			First(&availability).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDayUnavailable
			}
			return err
		}

		if !availability.Contains(booking.BookingTime) {
			return ErrOutsideHours
		}

		// Only active bookings occupy the slot: cancelled, no_show and
		// completed ones do not count against capacity.
		var conflicting int64
		err = tx.Model(&models.Booking{}).
			Where("service_id = ? AND booking_date = ? AND booking_time = ? AND status IN ?",
				service.ID, booking.BookingDate, booking.BookingTime,
				[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
			Count(&conflicting).Error
		if err != nil {
			return err
		}
		if conflicting >= int64(service.MaxCapacity) {
			return ErrNoCapacity
		}

		return tx.Create(booking).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.notifier.BookingConfirmation(booking.ID)
	}
	return booking, nil
}

// Cancel is the user-facing cancellation: allowed only from
// pending/confirmed and only before the scheduled instant. On failure
// the booking is left untouched.
func (s *BookingService) Cancel(booking *models.Booking, reason string) error {
	if !booking.Cancel(reason) {
		return ErrNotCancellable
	}
	if err := s.db.Save(booking).Error; err != nil {
		return err
	}
	if s.notifier != nil {
		go s.notifier.BookingCancelled(booking.ID)
	}
	return nil
}

// Transition applies a staff lifecycle move. Terminal bookings
// (completed, cancelled, no_show) reject every transition.
func (s *BookingService) Transition(booking *models.Booking, status string) error {
	if !booking.CanTransitionTo(status) {
		return ErrInvalidTransition
	}

	booking.Status = status
	if status == models.BookingStatusCancelled {
		now := time.Now()
		booking.CancelledAt = &now
	}
	if err := s.db.Save(booking).Error; err != nil {
		return err
	}

	if s.notifier != nil {
		switch status {
		case models.BookingStatusCancelled:
			go s.notifier.BookingCancelled(booking.ID)
		case models.BookingStatusCompleted:
			go s.notifier.ReviewRequest(booking.ID)
		}
	}
	return nil
}

// MarkPaid records payment; payment_date feeds the revenue reports.
func (s *BookingService) MarkPaid(booking *models.Booking) error {
	if booking.Paid {
		return nil
	}
	now := time.Now()
	booking.Paid = true
	booking.PaymentDate = &now
	return s.db.Save(booking).Error
}
