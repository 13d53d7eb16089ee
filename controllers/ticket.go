// controllers/ticket.go
package controllers

import (
	"errors"
	"net/http"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTicketInput defines the expected JSON structure for opening a ticket
type CreateTicketInput struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateTicketInput defines the admin reply/status update
type UpdateTicketInput struct {
	Status *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Reply  *string `json:"reply"`
}

// CreateTicket opens a support ticket for the requester
func CreateTicket(c *gin.Context) {
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

	var input CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ticket := models.SupportTicket{
		UserID:  userUUID,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.TicketOpen,
	}

	if err := config.DB.Create(&ticket).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetTickets lists the requester's tickets; admins see all
func GetTickets(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	query := config.DB.Model(&models.SupportTicket{})
	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tickets []models.SupportTicket
	if err := query.Order("created_at desc").Find(&tickets).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// UpdateTicket sets status and/or reply (admin only)
func UpdateTicket(c *gin.Context) {
	ticketID := c.Param("id")
	ticketUUID, err := uuid.Parse(ticketID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID format")
		return
	}

	var input UpdateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var ticket models.SupportTicket
	if err := config.DB.First(&ticket, "id = ?", ticketUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Ticket not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Reply != nil {
		ticket.Reply = *input.Reply
	}

	if err := config.DB.Save(&ticket).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}
