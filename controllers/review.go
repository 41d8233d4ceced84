// controllers/review.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"serenity-spa-backend/config"
	"serenity-spa-backend/models"
	"serenity-spa-backend/services"
	"serenity-spa-backend/utils"
)

// CreateReviewInput defines the expected JSON structure
type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview adds a review to one of the user's completed bookings
func CreateReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	booking, ok := userBooking(c, user.ID)
	if !ok {
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review, err := reviewService.Create(booking, input.Rating, input.Comment)
	if err != nil {
		if services.IsRejection(err) {
			utils.RespondWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetServiceReviews lists reviews left on a service's bookings (public)
func GetServiceReviews(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var reviews []models.Review
	err = config.DB.
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.service_id = ?", serviceUUID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
