// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"serenity-spa-backend/config"
	"serenity-spa-backend/models"
	"serenity-spa-backend/utils"
)

// ReportController handles all reporting functions
type ReportController struct{}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type ServiceRevenue struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type CategoryRevenue struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type ServiceStats struct {
	Name          string   `json:"name"`
	TotalBookings int      `json:"totalBookings"`
	AvgRating     *float64 `json:"avgRating"`
	TotalRevenue  float64  `json:"totalRevenue"`
}

type UserStats struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	TotalBookings     int     `json:"totalBookings"`
	TotalSpent        float64 `json:"totalSpent"`
	AveragePerBooking float64 `json:"averagePerBooking"`
}

// GetRevenueReport aggregates paid-booking revenue
func (ReportController) GetRevenueReport(c *gin.Context) {
	thirtyDaysAgo := utils.BeginningOfDay(time.Now()).AddDate(0, 0, -30)

	var daily []DailyRevenue
	config.DB.Raw(`
        SELECT DATE(payment_date) AS date, SUM(total_price) AS total, COUNT(id) AS count
        FROM bookings
        WHERE paid = ? AND payment_date >= ?
        GROUP BY DATE(payment_date)
        ORDER BY date
    `, true, thirtyDaysAgo).Scan(&daily)
	for i := range daily {
		if daily[i].Count > 0 {
			daily[i].Average = daily[i].Total / float64(daily[i].Count)
		}
	}

	var byService []ServiceRevenue
	config.DB.Raw(`
        SELECT s.name AS name, SUM(b.total_price) AS total, COUNT(b.id) AS count
        FROM bookings b
        JOIN services s ON s.id = b.service_id
        WHERE b.paid = ?
        GROUP BY s.name
        ORDER BY total DESC
        LIMIT 10
    `, true).Scan(&byService)

	var byCategory []CategoryRevenue
	config.DB.Raw(`
        SELECT c.name AS name, SUM(b.total_price) AS total, COUNT(b.id) AS count
        FROM bookings b
        JOIN services s ON s.id = b.service_id
        JOIN categories c ON c.id = s.category_id
        WHERE b.paid = ?
        GROUP BY c.name
        ORDER BY total DESC
    `, true).Scan(&byCategory)

	var totalAllTime float64
	config.DB.Model(&models.Booking{}).Where("paid = ?", true).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalAllTime)

	var totalThirtyDays float64
	config.DB.Model(&models.Booking{}).
		Where("paid = ? AND payment_date >= ?", true, thirtyDaysAgo).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalThirtyDays)

	c.JSON(http.StatusOK, gin.H{
		"dailyRevenue":      daily,
		"revenueByService":  byService,
		"revenueByCategory": byCategory,
		"totalAllTime":      totalAllTime,
		"totalThirtyDays":   totalThirtyDays,
	})
}

// GetServicesStats aggregates bookings, rating and revenue per service
func (ReportController) GetServicesStats(c *gin.Context) {
	var services []ServiceStats
	config.DB.Raw(`
        SELECT s.name AS name,
               COUNT(b.id) AS total_bookings,
               AVG(r.rating) AS avg_rating,
               COALESCE(SUM(b.total_price), 0) AS total_revenue
        FROM services s
        LEFT JOIN bookings b ON b.service_id = s.id
        LEFT JOIN reviews r ON r.booking_id = b.id
        GROUP BY s.name
        ORDER BY total_bookings DESC
    `).Scan(&services)

	var categories []struct {
		Name          string `json:"name"`
		TotalServices int    `json:"totalServices"`
		TotalBookings int    `json:"totalBookings"`
	}
	config.DB.Raw(`
        SELECT c.name AS name,
               COUNT(DISTINCT s.id) AS total_services,
               COUNT(b.id) AS total_bookings
        FROM categories c
        LEFT JOIN services s ON s.category_id = c.id
        LEFT JOIN bookings b ON b.service_id = s.id
        GROUP BY c.name
        ORDER BY total_bookings DESC
    `).Scan(&categories)

	c.JSON(http.StatusOK, gin.H{
		"services":   services,
		"categories": categories,
	})
}

// GetUsersStats aggregates booking activity per user
func (ReportController) GetUsersStats(c *gin.Context) {
	var totalUsers int64
	config.DB.Model(&models.User{}).Where("deleted_at IS NULL").Count(&totalUsers)

	var usersWithBookings int64
	config.DB.Model(&models.User{}).
		Where("deleted_at IS NULL AND id IN (SELECT DISTINCT user_id FROM bookings)").
		Count(&usersWithBookings)

	var topUsers []UserStats
	config.DB.Raw(`
        SELECT u.name AS name, u.email AS email,
               COUNT(b.id) AS total_bookings,
               COALESCE(SUM(b.total_price), 0) AS total_spent
        FROM users u
        JOIN bookings b ON b.user_id = u.id
        GROUP BY u.name, u.email
        HAVING COUNT(b.id) > 0
        ORDER BY total_spent DESC
        LIMIT 10
    `).Scan(&topUsers)
	for i := range topUsers {
		if topUsers[i].TotalBookings > 0 {
			topUsers[i].AveragePerBooking = topUsers[i].TotalSpent / float64(topUsers[i].TotalBookings)
		}
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	var newUsers int64
	config.DB.Model(&models.User{}).
		Where("deleted_at IS NULL AND created_at >= ?", thirtyDaysAgo).
		Count(&newUsers)

	withBookingsPercentage := 0.0
	if totalUsers > 0 {
		withBookingsPercentage = float64(usersWithBookings) * 100 / float64(totalUsers)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":                 totalUsers,
		"usersWithBookings":          usersWithBookings,
		"usersWithBookingsPercentage": withBookingsPercentage,
		"topUsers":                   topUsers,
		"newUsers":                   newUsers,
	})
}
