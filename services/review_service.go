// services/review_service.go
package services

import (
	"gorm.io/gorm"

	"serenity-spa-backend/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create enforces the review gate: one review per booking, only once
// the booking is completed, rating inside 1..5 (rejected, not clamped).
// The unique index on reviews.booking_id backs the pre-check against
// concurrent submissions.
func (s *ReviewService) Create(booking *models.Booking, rating int, comment string) (*models.Review, error) {
	if booking.Status != models.BookingStatusCompleted {
		return nil, ErrNotCompleted
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var existing int64
	if err := s.db.Model(&models.Review{}).
		Where("booking_id = ?", booking.ID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		BookingID:  booking.ID,
		Rating:     rating,
		Comment:    comment,
		IsVerified: true, // the completed booking itself verifies the purchase
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
