package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"serenity-spa-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Availability{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "secret-password",
		Name:     "Test User",
		Role:     models.RoleCustomer,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// seedService creates a service open Monday 09:00-17:00.
func seedService(t *testing.T, db *gorm.DB, durationMinutes, maxCapacity int) *models.Service {
	t.Helper()
	category := &models.Category{Name: "Massages " + uuid.NewString()[:8]}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	service := &models.Service{
		CategoryID:      category.ID,
		Name:            "Deep Tissue Massage",
		DurationMinutes: durationMinutes,
		Price:           80,
		MaxCapacity:     maxCapacity,
		IsActive:        true,
	}
	if err := db.Create(service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	window := &models.Availability{
		ServiceID:   service.ID,
		DayOfWeek:   0, // Monday
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsAvailable: true,
	}
	if err := db.Create(window).Error; err != nil {
		t.Fatalf("seed availability: %v", err)
	}
	return service
}

// nextDate returns the first date strictly after today falling on
// weekday, at local midnight so seeded rows share the slot key the
// booking service stores.
func nextDate(weekday time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}
