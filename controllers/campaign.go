// controllers/campaign.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateCampaignsInput defines the bulk generation request
type GenerateCampaignsInput struct {
	Count        int    `json:"count" binding:"required,min=1,max=500"`
	Name         string `json:"name" binding:"required"`
	LocationType string `json:"locationType" binding:"required,oneof=academy shop ground nets"`
	LocationName string `json:"locationName"`
	City         string `json:"city"`
	Prefix       string `json:"prefix"`
}

// UpdateCampaignInput defines the expected JSON structure for updating a campaign
type UpdateCampaignInput struct {
	Name         *string `json:"name"`
	LocationName *string `json:"locationName"`
	City         *string `json:"city"`
	IsActive     *bool   `json:"isActive"`
}

// GenerateCampaigns bulk-creates N campaign codes, each backed by a fresh
// synthetic user that exists only to hold the referral code (admin only).
func GenerateCampaigns(c *gin.Context) {
	var input GenerateCampaignsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	prefix := input.Prefix
	if prefix == "" {
		prefix = "CMP"
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	campaigns := make([]models.Campaign, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		code := utils.GenerateReferralCode(prefix, 6)

		holder := models.User{
			Email:        fmt.Sprintf("campaign+%s@crickpro.internal", utils.GenerateRandomString(10)),
			Password:     utils.GenerateRandomString(24),
			Name:         fmt.Sprintf("%s (%s #%d)", input.Name, input.LocationType, i+1),
			Role:         models.RoleClient,
			ReferralCode: code,
			IsActive:     false, // holder accounts can never log in
		}
		if err := tx.Create(&holder).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create campaign holder")
			return
		}

		campaign := models.Campaign{
			Name:         input.Name,
			Code:         code,
			HolderUserID: holder.ID,
			LocationType: input.LocationType,
			LocationName: input.LocationName,
			City:         input.City,
			IsActive:     true,
		}
		if err := tx.Create(&campaign).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create campaign")
			return
		}
		campaigns = append(campaigns, campaign)
	}

	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{
		"message":   fmt.Sprintf("%d campaigns created", len(campaigns)),
		"campaigns": campaigns,
	})
}

// GetCampaigns lists campaigns with signup counts (admin only)
func GetCampaigns(c *gin.Context) {
	query := config.DB.Model(&models.Campaign{})
	if locationType := c.Query("locationType"); locationType != "" {
		query = query.Where("location_type = ?", locationType)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	var campaigns []models.Campaign
	if err := query.Order("created_at desc").Find(&campaigns).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve campaigns")
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// UpdateCampaign edits campaign metadata or toggles it (admin only)
func UpdateCampaign(c *gin.Context) {
	campaignID := c.Param("id")
	campaignUUID, err := uuid.Parse(campaignID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid campaign ID format")
		return
	}

	var input UpdateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var campaign models.Campaign
	if err := config.DB.First(&campaign, "id = ?", campaignUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.LocationName != nil {
		campaign.LocationName = *input.LocationName
	}
	if input.City != nil {
		campaign.City = *input.City
	}
	if input.IsActive != nil {
		campaign.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&campaign).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}
