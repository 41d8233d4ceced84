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

type TransitionInput struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed cancelled no_show"`
	Reason string `json:"reason"`
}

// GetDashboardOverview returns the staff landing-page stats
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := utils.BeginningOfDay(now)

	var totalBookings int64
	config.DB.Model(&models.Booking{}).Count(&totalBookings)

	var totalUsers int64
	config.DB.Model(&models.User{}).Where("deleted_at IS NULL").Count(&totalUsers)

	var totalServices int64
	config.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&totalServices)

	// Revenue counts paid bookings only
	var totalRevenue float64
	config.DB.Model(&models.Booking{}).Where("paid = ?", true).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalRevenue)

	var todayRevenue float64
	config.DB.Model(&models.Booking{}).
		Where("paid = ? AND payment_date >= ? AND payment_date < ?", true, today, today.AddDate(0, 0, 1)).
		Select("COALESCE(SUM(total_price), 0)").Scan(&todayRevenue)

	statusCounts := map[string]int64{}
	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
	} {
		var n int64
		config.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&n)
		statusCounts[status] = n
	}

	// Upcoming active bookings, next 7 days
	var upcomingBookings []models.Booking
	config.DB.Where("booking_date >= ? AND booking_date <= ? AND status IN ?",
		today, today.AddDate(0, 0, 7),
		[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Preload("User").Preload("Service").
		Order("booking_date, booking_time").
		Limit(10).
		Find(&upcomingBookings)

	var avgRating *float64
	config.DB.Model(&models.Review{}).Select("AVG(rating)").Scan(&avgRating)

	var todayBookings int64
	config.DB.Model(&models.Booking{}).Where("booking_date = ?", today).Count(&todayBookings)

	percentage := func(n int64) float64 {
		if totalBookings == 0 {
			return 0
		}
		return float64(n) * 100 / float64(totalBookings)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings":       totalBookings,
		"totalUsers":          totalUsers,
		"totalServices":       totalServices,
		"totalRevenue":        totalRevenue,
		"todayRevenue":        todayRevenue,
		"pendingBookings":     statusCounts[models.BookingStatusPending],
		"confirmedBookings":   statusCounts[models.BookingStatusConfirmed],
		"completedBookings":   statusCounts[models.BookingStatusCompleted],
		"upcomingBookings":    upcomingBookings,
		"avgRating":           avgRating,
		"todayBookings":       todayBookings,
		"pendingPercentage":   percentage(statusCounts[models.BookingStatusPending]),
		"confirmedPercentage": percentage(statusCounts[models.BookingStatusConfirmed]),
		"completedPercentage": percentage(statusCounts[models.BookingStatusCompleted]),
	})
}

// GetManagedBookings lists all bookings with staff filters
func GetManagedBookings(c *gin.Context) {
	query := config.DB.Preload("User").Preload("Service").
		Order("booking_date DESC, booking_time DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if service := c.Query("service"); service != "" {
		if serviceUUID, err := uuid.Parse(service); err == nil {
			query = query.Where("service_id = ?", serviceUUID)
		}
	}
	if date := c.Query("date"); date != "" {
		if d, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil {
			query = query.Where("booking_date = ?", d)
		}
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// TransitionBooking applies a staff lifecycle move
func TransitionBooking(c *gin.Context) {
	booking, ok := managedBooking(c)
	if !ok {
		return
	}

	var input TransitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == models.BookingStatusCancelled {
		booking.CancellationReason = input.Reason
	}

	if err := bookingService.Transition(booking, input.Status); err != nil {
		if services.IsRejection(err) {
			utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// MarkBookingPaid records payment for a booking
func MarkBookingPaid(c *gin.Context) {
	booking, ok := managedBooking(c)
	if !ok {
		return
	}

	if err := bookingService.MarkPaid(booking); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to mark booking paid")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func managedBooking(c *gin.Context) (*models.Booking, bool) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return nil, false
	}

	var booking models.Booking
	err = config.DB.Preload("User").Preload("Service").
		First(&booking, "id = ?", bookingUUID).Error
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
