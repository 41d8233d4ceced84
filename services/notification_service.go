// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"serenity-spa-backend/models"
)

// Notifier is the outbound-notification port called after successful
// booking transitions. Implementations must never fail the transition:
// delivery errors are logged and swallowed.
type Notifier interface {
	BookingConfirmation(bookingID uuid.UUID)
	BookingCancelled(bookingID uuid.UUID)
	BookingReminder(bookingID uuid.UUID)
	ReviewRequest(bookingID uuid.UUID)
}

// NotificationService delivers over email (SMTP) and SMS (Twilio),
// honoring each user's notify preferences.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotificationService) BookingConfirmation(bookingID uuid.UUID) {
	booking, ok := s.loadBooking(bookingID)
	if !ok {
		return
	}
	subject := fmt.Sprintf("Booking confirmation - %s", booking.Service.Name)
	body := fmt.Sprintf("Hi %s, your booking for %s on %s at %s has been received.",
		booking.User.Name, booking.Service.Name,
		booking.BookingDate.Format("2006-01-02"), booking.BookingTime)
	s.deliver(booking, subject, body)
}

func (s *NotificationService) BookingCancelled(bookingID uuid.UUID) {
	booking, ok := s.loadBooking(bookingID)
	if !ok {
		return
	}
	subject := fmt.Sprintf("Booking cancelled - %s", booking.Service.Name)
	body := fmt.Sprintf("Hi %s, your booking for %s on %s at %s has been cancelled.",
		booking.User.Name, booking.Service.Name,
		booking.BookingDate.Format("2006-01-02"), booking.BookingTime)
	s.deliver(booking, subject, body)
}

func (s *NotificationService) BookingReminder(bookingID uuid.UUID) {
	booking, ok := s.loadBooking(bookingID)
	if !ok {
		return
	}
	subject := fmt.Sprintf("Reminder: %s tomorrow", booking.Service.Name)
	body := fmt.Sprintf("Hi %s, this is a reminder of your booking for %s tomorrow at %s.",
		booking.User.Name, booking.Service.Name, booking.BookingTime)
	s.deliver(booking, subject, body)
}

func (s *NotificationService) ReviewRequest(bookingID uuid.UUID) {
	booking, ok := s.loadBooking(bookingID)
	if !ok {
		return
	}
	// Skip if the booking was already reviewed
	var reviewed int64
	s.db.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&reviewed)
	if reviewed > 0 {
		return
	}
	subject := fmt.Sprintf("How was %s?", booking.Service.Name)
	body := fmt.Sprintf("Hi %s, tell us about your experience with %s.",
		booking.User.Name, booking.Service.Name)
	s.deliver(booking, subject, body)
}

func (s *NotificationService) loadBooking(bookingID uuid.UUID) (*models.Booking, bool) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Service").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		log.Printf("Notification: failed to load booking %s: %v", bookingID, err)
		return nil, false
	}
	return &booking, true
}

func (s *NotificationService) deliver(booking *models.Booking, subject, body string) {
	if booking.User.NotifyEmail {
		if err := s.sendEmail(booking.User.Email, subject, body); err != nil {
			log.Printf("Failed to send email to %s: %v", booking.User.Email, err)
		}
	}
	if booking.User.NotifySMS && booking.ContactPhone != "" {
		if err := s.sendSMS(booking.ContactPhone, body); err != nil {
			log.Printf("Failed to send SMS to %s: %v", booking.ContactPhone, err)
		}
	}
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not set")
	}
	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}

func (s *NotificationService) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("SMS sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}
