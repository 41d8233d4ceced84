package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity-spa-backend/utils"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	Role string `gorm:"type:varchar(20);not null;default:'customer'" json:"role"` // 'customer' or 'staff'

	// Profile
	DocumentType   string `gorm:"type:varchar(3)" json:"documentType"` // CC, CE, PAS
	DocumentNumber string `gorm:"type:varchar(20)" json:"documentNumber"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Zipcode        string `gorm:"type:varchar(10)" json:"zipcode"`
	Bio            string `gorm:"type:text" json:"bio"`

	// Notification preferences
	NotifyEmail bool `gorm:"default:true" json:"notifyEmail"`
	NotifySMS   bool `gorm:"default:false" json:"notifySms"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}
