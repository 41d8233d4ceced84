package services

import "errors"

// Rejection is a recoverable business-rule failure. The message is the
// human-readable reason surfaced verbatim to the caller; anything that
// is not a Rejection is treated as a fatal persistence error.
type Rejection string

func (r Rejection) Error() string { return string(r) }

// IsRejection distinguishes business-rule rejections from fatal errors.
func IsRejection(err error) bool {
	var r Rejection
	return errors.As(err, &r)
}

var (
	// Booking creation, checked in order
	ErrInvalidTime    = Rejection("invalid time, expected HH:MM")
	ErrBookingInPast  = Rejection("in the past")
	ErrDayUnavailable = Rejection("not available this day")
	ErrOutsideHours   = Rejection("outside hours")
	ErrNoCapacity     = Rejection("no capacity")

	// Lifecycle
	ErrNotCancellable    = Rejection("booking can no longer be cancelled")
	ErrInvalidTransition = Rejection("status transition not allowed")

	// Reviews
	ErrNotCompleted    = Rejection("only completed bookings may be reviewed")
	ErrAlreadyReviewed = Rejection("already reviewed")
	ErrInvalidRating   = Rejection("rating must be between 1 and 5")
)
