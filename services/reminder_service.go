// services/reminder_service.go
package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"serenity-spa-backend/models"
	"serenity-spa-backend/utils"
)

// ReminderService sends a reminder the day before each active booking.
type ReminderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewReminderService(db *gorm.DB, notifier Notifier) *ReminderService {
	return &ReminderService{db: db, notifier: notifier}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	if _, err := c.AddFunc("0 8 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders notifies every pending/confirmed booking scheduled
// for tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var bookings []models.Booking
	err := s.db.Where("booking_date = ? AND status IN ?",
		tomorrow, []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		s.notifier.BookingReminder(booking.ID)
	}

	log.Printf("Daily reminder processing completed, %d bookings", len(bookings))
}
