// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity-spa-backend/config"
	"serenity-spa-backend/models"
	"serenity-spa-backend/services"
	"serenity-spa-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	BookingDate  string `json:"bookingDate" binding:"required"` // YYYY-MM-DD
	BookingTime  string `json:"bookingTime" binding:"required"` // HH:MM
	ContactPhone string `json:"contactPhone" binding:"required"`
	Notes        string `json:"notes"`
}

type CancelBookingInput struct {
	Reason string `json:"reason"`
}

// CreateBooking validates the slot and creates a pending booking for
// the authenticated user. Rejections come back as 422 with the reason.
func CreateBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.ContactPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact phone")
		return
	}

	bookingDate, err := time.ParseInLocation("2006-01-02", input.BookingDate, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var service models.Service
	err = config.DB.Where("id = ? AND is_active = ?", serviceUUID, true).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking, err := bookingService.Create(user.ID, &service, services.CreateBookingInput{
		BookingDate:  bookingDate,
		BookingTime:  input.BookingTime,
		ContactPhone: input.ContactPhone,
		Notes:        input.Notes,
	})
	if err != nil {
		if services.IsRejection(err) {
			utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists the authenticated user's bookings, newest first
func GetBookings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", user.ID).
		Preload("Service").Preload("Review").
		Order("booking_date DESC, booking_time DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one of the user's bookings with derived fields
func GetBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	booking, ok := userBooking(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":       booking,
		"endTime":       booking.EndTime(),
		"isPast":        booking.IsPast(),
		"canBeCancelled": booking.CanBeCancelled(),
	})
}

// CancelBooking cancels one of the user's bookings if still allowed
func CancelBooking(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	booking, ok := userBooking(c, user.ID)
	if !ok {
		return
	}

	// Body is optional; a missing reason is fine
	var input CancelBookingInput
	_ = c.ShouldBindJSON(&input)

	if err := bookingService.Cancel(booking, input.Reason); err != nil {
		if services.IsRejection(err) {
			utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

func userBooking(c *gin.Context, userID uuid.UUID) (*models.Booking, bool) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return nil, false
	}

	var booking models.Booking
	err = config.DB.Where("id = ? AND user_id = ?", bookingUUID, userID).
		Preload("Service").Preload("Review").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &booking, true
}
