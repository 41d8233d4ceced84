package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"serenity-spa-backend/models"
)

func seedBookingWithStatus(t *testing.T, db *gorm.DB, status string) *models.Booking {
	t.Helper()
	user := seedUser(t, db, status+"-reviewer@example.com")
	service := seedService(t, db, 60, 1)
	booking := &models.Booking{
		UserID:       user.ID,
		ServiceID:    service.ID,
		BookingDate:  nextDate(time.Monday),
		BookingTime:  "10:00",
		Status:       status,
		ContactPhone: "+12025551234",
		TotalPrice:   service.Price,
	}
	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func TestCreateReview_Accept(t *testing.T) {
	db := openTestDB(t)
	booking := seedBookingWithStatus(t, db, models.BookingStatusCompleted)
	svc := NewReviewService(db)

	review, err := svc.Create(booking, 5, "wonderful")
	if err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
	if !review.IsVerified {
		t.Fatal("expected review to be marked verified")
	}
	if review.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", review.Rating)
	}
}

func TestCreateReview_NotCompleted(t *testing.T) {
	db := openTestDB(t)
	svc := NewReviewService(db)

	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusNoShow,
	} {
		booking := seedBookingWithStatus(t, db, status)
		if _, err := svc.Create(booking, 4, ""); !errors.Is(err, ErrNotCompleted) {
			t.Fatalf("status %s: expected %q, got %v", status, ErrNotCompleted, err)
		}
	}
}

func TestCreateReview_AlreadyReviewed(t *testing.T) {
	db := openTestDB(t)
	booking := seedBookingWithStatus(t, db, models.BookingStatusCompleted)
	svc := NewReviewService(db)

	if _, err := svc.Create(booking, 4, "good"); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := svc.Create(booking, 5, "even better"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected %q, got %v", ErrAlreadyReviewed, err)
	}

	var count int64
	db.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one review, got %d", count)
	}
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	db := openTestDB(t)
	booking := seedBookingWithStatus(t, db, models.BookingStatusCompleted)
	svc := NewReviewService(db)

	for _, rating := range []int{0, -1, 6, 100} {
		if _, err := svc.Create(booking, rating, ""); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected %q, got %v", rating, ErrInvalidRating, err)
		}
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid ratings must not create reviews, got %d", count)
	}
}
