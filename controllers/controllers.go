package controllers

import (
	"serenity-spa-backend/config"
	"serenity-spa-backend/services"
)

var (
	bookingService *services.BookingService
	reviewService  *services.ReviewService
)

// InitServices wires the domain services; call after config.ConnectDB.
func InitServices() {
	notifier := services.NewNotificationService(config.DB)
	bookingService = services.NewBookingService(config.DB, notifier)
	reviewService = services.NewReviewService(config.DB)
}
