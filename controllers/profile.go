// controllers/profile.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-spa-backend/config"
	"serenity-spa-backend/utils"
)

// UpdateProfileInput defines the expected JSON structure
type UpdateProfileInput struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	DocumentType   *string `json:"documentType" binding:"omitempty,oneof=CC CE PAS"`
	DocumentNumber *string `json:"documentNumber"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	Zipcode        *string `json:"zipcode"`
	Bio            *string `json:"bio"`
	NotifyEmail    *bool   `json:"notifyEmail"`
	NotifySMS      *bool   `json:"notifySms"`
}

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	// Update fields if provided
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.DocumentType != nil {
		user.DocumentType = *input.DocumentType
	}
	if input.DocumentNumber != nil {
		user.DocumentNumber = *input.DocumentNumber
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Zipcode != nil {
		user.Zipcode = *input.Zipcode
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.NotifyEmail != nil {
		user.NotifyEmail = *input.NotifyEmail
	}
	if input.NotifySMS != nil {
		user.NotifySMS = *input.NotifySMS
	}

	if err := config.DB.Save(user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}
