// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity-spa-backend/config"
	"serenity-spa-backend/models"
	"serenity-spa-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	CategoryID      uuid.UUID `json:"categoryId" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=15"`
	Price           float64   `json:"price" binding:"min=0"`
	MaxCapacity     int       `json:"maxCapacity" binding:"omitempty,min=1"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	CategoryID      *uuid.UUID `json:"categoryId"`
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	DurationMinutes *int       `json:"durationMinutes" binding:"omitempty,min=15"`
	Price           *float64   `json:"price" binding:"omitempty,min=0"`
	MaxCapacity     *int       `json:"maxCapacity" binding:"omitempty,min=1"`
	IsActive        *bool      `json:"isActive"`
}

// AvailabilityInput is one weekly window for a service
type AvailabilityInput struct {
	DayOfWeek   int    `json:"dayOfWeek" binding:"min=0,max=6"` // 0=Monday .. 6=Sunday
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
}

// GetServices lists active services, optionally filtered by category
func GetServices(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true).
		Preload("Category").Preload("Availabilities", "is_available = ?", true)

	if categoryFilter := c.Query("category"); categoryFilter != "" {
		categoryUUID, err := uuid.Parse(categoryFilter)
		if err == nil {
			// Ignore filters pointing at unknown categories
			var count int64
			config.DB.Model(&models.Category{}).Where("id = ?", categoryUUID).Count(&count)
			if count > 0 {
				query = query.Where("category_id = ?", categoryUUID)
			}
		}
	}

	var services []models.Service
	if err := query.Order("name").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService returns a service with its availability windows and review summary
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	err = config.DB.Where("id = ? AND is_active = ?", serviceUUID, true).
		Preload("Category").Preload("Availabilities", "is_available = ?", true).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var avgRating *float64
	var reviewCount int64
	config.DB.Model(&models.Review{}).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.service_id = ?", serviceUUID).
		Count(&reviewCount)
	if reviewCount > 0 {
		config.DB.Model(&models.Review{}).
			Joins("JOIN bookings ON bookings.id = reviews.booking_id").
			Where("bookings.service_id = ?", serviceUUID).
			Select("AVG(reviews.rating)").Scan(&avgRating)
	}

	c.JSON(http.StatusOK, gin.H{
		"service":     service,
		"avgRating":   avgRating,
		"reviewCount": reviewCount,
	})
}

// CreateService creates a new service (staff only)
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
		return
	}

	maxCapacity := input.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = 1
	}

	service := models.Service{
		CategoryID:      input.CategoryID,
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		MaxCapacity:     maxCapacity,
		IsActive:        true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing service (staff only)
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CategoryID != nil {
		var count int64
		config.DB.Model(&models.Category{}).Where("id = ?", *input.CategoryID).Count(&count)
		if count == 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Category not found")
			return
		}
		service.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.MaxCapacity != nil {
		service.MaxCapacity = *input.MaxCapacity
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft-disables a service. Services are never hard-deleted
// while bookings reference them.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Model(&models.Service{}).
		Where("id = ?", serviceUUID).Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to disable service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service disabled successfully"})
}

// SetAvailability replaces the weekly windows of a service (staff only).
// One window per weekday at most.
func SetAvailability(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input []AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	seen := map[int]bool{}
	windows := make([]models.Availability, 0, len(input))
	for _, w := range input {
		if !utils.ValidateTimeOfDay(w.StartTime) || !utils.ValidateTimeOfDay(w.EndTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Times must be HH:MM")
			return
		}
		if w.EndTime < w.StartTime {
			utils.RespondWithError(c, http.StatusBadRequest, "End time before start time")
			return
		}
		if seen[w.DayOfWeek] {
			utils.RespondWithError(c, http.StatusBadRequest, "Duplicate day of week")
			return
		}
		seen[w.DayOfWeek] = true

		isAvailable := true
		if w.IsAvailable != nil {
			isAvailable = *w.IsAvailable
		}
		windows = append(windows, models.Availability{
			ServiceID:   serviceUUID,
			DayOfWeek:   w.DayOfWeek,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsAvailable: isAvailable,
		})
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceUUID).Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update availability")
		return
	}

	c.JSON(http.StatusOK, windows)
}
