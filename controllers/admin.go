// controllers/admin.go
package controllers

import (
	"net/http"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAdminOverview returns back-office counts: users by role, bookings by
// status, promo redemptions and open tickets.
func GetAdminOverview(c *gin.Context) {
	var totalUsers, totalClients, totalFreelancers int64
	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleClient).Count(&totalClients)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleFreelancer).Count(&totalFreelancers)

	bookingsByStatus := make(map[string]int64)
	for _, status := range []models.BookingStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusInProgress,
		models.StatusCompleted, models.StatusCancelled, models.StatusDisputed,
		models.StatusRefunded,
	} {
		var count int64
		config.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count)
		bookingsByStatus[string(status)] = count
	}

	var promoRedemptions struct{ Total int64 }
	config.DB.Model(&models.Promo{}).Select("COALESCE(SUM(used_count), 0) as total").
		Scan(&promoRedemptions)

	var openTickets int64
	config.DB.Model(&models.SupportTicket{}).
		Where("status IN ?", []string{models.TicketOpen, models.TicketInProgress}).
		Count(&openTickets)

	var rewardsPaid int64
	config.DB.Model(&models.Transaction{}).Where("type = ?", models.TrxReferralReward).
		Count(&rewardsPaid)

	c.JSON(http.StatusOK, gin.H{
		"users": gin.H{
			"total":       totalUsers,
			"clients":     totalClients,
			"freelancers": totalFreelancers,
		},
		"bookings":         bookingsByStatus,
		"promoRedemptions": promoRedemptions.Total,
		"referralRewards":  rewardsPaid,
		"openTickets":      openTickets,
	})
}

// GetAdminUsers lists users with optional role/active filters
func GetAdminUsers(c *gin.Context) {
	query := config.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if active := c.Query("isActive"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var users []models.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetAdminBookings lists all bookings with optional status filter
func GetAdminBookings(c *gin.Context) {
	query := config.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("scheduled_at desc").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
