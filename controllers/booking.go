// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/services"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for checkout
type CreateBookingInput struct {
	ServiceID   uuid.UUID `json:"serviceId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	PromoCode   string    `json:"promoCode"`
	Notes       string    `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for a status transition
type UpdateBookingInput struct {
	Status      *models.BookingStatus `json:"status"`
	Notes       *string               `json:"notes"`
	Rating      *int                  `json:"rating"`
	Review      *string               `json:"review"`
	ScheduledAt *time.Time            `json:"scheduledAt"`
}

// CreateBooking books a service for the authenticated client. An optional
// promo code is validated and redeemed as part of the same transaction.
func CreateBooking(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	clientUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ? AND is_active = ?", input.ServiceID, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if service.FreelancerID == clientUUID {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot book your own service")
		return
	}

	var discount float64
	var promo models.Promo
	if input.PromoCode != "" {
		if err := config.DB.First(&promo, "code = ?", input.PromoCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Promo code not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if err := promo.CanApply(service.Price, time.Now()); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		discount = promo.CalculateDiscount(service.Price)
	}

	booking := models.Booking{
		ClientID:    clientUUID,
		ServiceID:   service.ID,
		Status:      models.StatusPending,
		ScheduledAt: input.ScheduledAt,
		TotalPrice:  service.Price - discount,
		Discount:    discount,
		PromoCode:   input.PromoCode,
		Notes:       input.Notes,
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if input.PromoCode != "" {
		// The usage cap is enforced in the update itself so a burst of
		// concurrent redemptions cannot exceed it.
		res := tx.Model(&models.Promo{}).
			Where("id = ? AND used_count < max_uses", promo.ID).
			Update("used_count", gorm.Expr("used_count + 1"))
		if res.Error != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to redeem promo")
			return
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, models.ErrPromoExhausted.Error())
			return
		}
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists bookings visible to the requester: clients see their own,
// freelancers see bookings on their services, admins see everything.
func GetBookings(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	role, _ := c.Get("role")

	query := config.DB.Model(&models.Booking{})
	switch role {
	case models.RoleAdmin:
		// no scoping
	case models.RoleFreelancer:
		query = query.Where("service_id IN (?)",
			config.DB.Model(&models.Service{}).Select("id").Where("freelancer_id = ?", userUUID))
	default:
		query = query.Where("client_id = ?", userUUID)
	}

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

// GetBooking returns a denormalized view merging service and provider fields
func GetBooking(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookingID := c.Param("id")
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Service").Preload("Service.Freelancer").Preload("Client").
		First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	role, _ := c.Get("role")
	if !canAccessBooking(&booking, userID.(string), role) {
		utils.RespondWithError(c, http.StatusForbidden, "Not a party to this booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          booking.ID,
		"status":      booking.Status,
		"scheduledAt": booking.ScheduledAt,
		"totalPrice":  booking.TotalPrice,
		"discount":    booking.Discount,
		"promoCode":   booking.PromoCode,
		"notes":       booking.Notes,
		"rating":      booking.Rating,
		"review":      booking.Review,
		"service": gin.H{
			"id":       booking.Service.ID,
			"title":    booking.Service.Title,
			"category": booking.Service.Category,
			"price":    booking.Service.Price,
			"duration": booking.Service.Duration,
			"location": booking.Service.Location,
		},
		"provider": gin.H{
			"id":    booking.Service.Freelancer.ID,
			"name":  booking.Service.Freelancer.Name,
			"email": booking.Service.Freelancer.Email,
			"phone": booking.Service.Freelancer.Phone,
		},
		"client": gin.H{
			"id":   booking.Client.ID,
			"name": booking.Client.Name,
		},
	})
}

// UpdateBooking performs a status transition and/or edits notes and schedule.
// The primary status write is the only operation whose failure reaches the
// caller; reward crediting and notifications degrade silently.
func UpdateBooking(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	bookingID := c.Param("id")
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Service").First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	role, _ := c.Get("role")
	if !canAccessBooking(&booking, userID.(string), role) {
		utils.RespondWithError(c, http.StatusForbidden, "Not a party to this booking")
		return
	}

	if input.Status != nil {
		newStatus := *input.Status
		if !newStatus.IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown booking status")
			return
		}
		if !booking.Status.CanTransitionTo(newStatus) {
			utils.RespondWithError(c, http.StatusBadRequest,
				"Cannot transition from "+string(booking.Status)+" to "+string(newStatus))
			return
		}
		if newStatus == models.StatusCancelled && (input.Notes == nil || *input.Notes == "") {
			utils.RespondWithError(c, http.StatusBadRequest, "Cancellation requires notes")
			return
		}
		if newStatus == models.StatusCompleted && (input.Review == nil || *input.Review == "") {
			utils.RespondWithError(c, http.StatusBadRequest, "Completion requires a review")
			return
		}
		booking.Status = newStatus
	}

	if input.Rating != nil {
		if !utils.ValidRating(*input.Rating) {
			utils.RespondWithError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		booking.Rating = input.Rating
	}
	if input.Review != nil {
		booking.Review = *input.Review
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	if input.ScheduledAt != nil {
		booking.ScheduledAt = *input.ScheduledAt
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	if input.Status != nil {
		runStatusSideEffects(&booking)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          booking.ID,
		"status":      booking.Status,
		"scheduledAt": booking.ScheduledAt,
		"totalPrice":  booking.TotalPrice,
		"notes":       booking.Notes,
		"rating":      booking.Rating,
		"review":      booking.Review,
	})
}

// runStatusSideEffects fires the non-propagating side effects of a transition.
func runStatusSideEffects(booking *models.Booking) {
	switch booking.Status {
	case models.StatusCompleted:
		if err := services.NewRewardService(config.DB).
			CreditReferralReward(booking.ClientID, booking.ID); err != nil {
			utils.Log.Printf("Booking %s: referral reward failed: %v", booking.ID, err)
		}
	case models.StatusRefunded:
		if err := services.NewRewardService(config.DB).RecordRefund(booking); err != nil {
			utils.Log.Printf("Booking %s: refund record failed: %v", booking.ID, err)
		}
	}

	if booking.Status == models.StatusInProgress || booking.Status == models.StatusCompleted {
		if services.DefaultNotifier != nil {
			go services.DefaultNotifier.NotifyBookingStatus(booking)
		}
	}
}

func canAccessBooking(booking *models.Booking, userID string, role interface{}) bool {
	if role == models.RoleAdmin {
		return true
	}
	return booking.ClientID.String() == userID || booking.Service.FreelancerID.String() == userID
}
