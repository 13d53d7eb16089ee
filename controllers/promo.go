// controllers/promo.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePromoInput defines the expected JSON structure for creating a promo
type CreatePromoInput struct {
	Code           string    `json:"code" binding:"required"`
	Description    string    `json:"description"`
	DiscountType   string    `json:"discountType" binding:"required,oneof=percentage flat"`
	DiscountValue  float64   `json:"discountValue" binding:"required,min=0"`
	MaxDiscount    float64   `json:"maxDiscount" binding:"min=0"`
	MinOrderAmount float64   `json:"minOrderAmount" binding:"min=0"`
	MaxUses        int       `json:"maxUses" binding:"required,min=1"`
	ValidFrom      time.Time `json:"validFrom" binding:"required"`
	ValidUntil     time.Time `json:"validUntil" binding:"required"`
}

// UpdatePromoInput defines the expected JSON structure for updating a promo
type UpdatePromoInput struct {
	Description    *string    `json:"description"`
	DiscountValue  *float64   `json:"discountValue" binding:"omitempty,min=0"`
	MaxDiscount    *float64   `json:"maxDiscount" binding:"omitempty,min=0"`
	MinOrderAmount *float64   `json:"minOrderAmount" binding:"omitempty,min=0"`
	MaxUses        *int       `json:"maxUses" binding:"omitempty,min=1"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil"`
	IsActive       *bool      `json:"isActive"`
}

// ValidatePromoInput defines the expected JSON structure for promo validation
type ValidatePromoInput struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"orderAmount" binding:"required,min=0"`
}

// CreatePromo creates a new promo code (admin only)
func CreatePromo(c *gin.Context) {
	var input CreatePromoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ValidUntil.Before(input.ValidFrom) {
		utils.RespondWithError(c, http.StatusBadRequest, "validUntil must be after validFrom")
		return
	}

	var existing models.Promo
	if err := config.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Promo code already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	promo := models.Promo{
		Code:           input.Code,
		Description:    input.Description,
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		MaxDiscount:    input.MaxDiscount,
		MinOrderAmount: input.MinOrderAmount,
		MaxUses:        input.MaxUses,
		ValidFrom:      input.ValidFrom,
		ValidUntil:     input.ValidUntil,
		IsActive:       true,
	}

	if err := config.DB.Create(&promo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create promo")
		return
	}

	c.JSON(http.StatusCreated, promo)
}

// GetPromos lists all promo codes (admin only)
func GetPromos(c *gin.Context) {
	var promos []models.Promo
	if err := config.DB.Order("created_at desc").Find(&promos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve promos")
		return
	}
	c.JSON(http.StatusOK, promos)
}

// UpdatePromo updates an existing promo (admin only)
func UpdatePromo(c *gin.Context) {
	promoID := c.Param("id")
	promoUUID, err := uuid.Parse(promoID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid promo ID format")
		return
	}

	var input UpdatePromoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var promo models.Promo
	if err := config.DB.First(&promo, "id = ?", promoUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Promo not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Description != nil {
		promo.Description = *input.Description
	}
	if input.DiscountValue != nil {
		promo.DiscountValue = *input.DiscountValue
	}
	if input.MaxDiscount != nil {
		promo.MaxDiscount = *input.MaxDiscount
	}
	if input.MinOrderAmount != nil {
		promo.MinOrderAmount = *input.MinOrderAmount
	}
	if input.MaxUses != nil {
		promo.MaxUses = *input.MaxUses
	}
	if input.ValidFrom != nil {
		promo.ValidFrom = *input.ValidFrom
	}
	if input.ValidUntil != nil {
		promo.ValidUntil = *input.ValidUntil
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&promo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update promo")
		return
	}

	c.JSON(http.StatusOK, promo)
}

// DeletePromo soft deletes a promo (admin only)
func DeletePromo(c *gin.Context) {
	promoID := c.Param("id")
	promoUUID, err := uuid.Parse(promoID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid promo ID format")
		return
	}

	result := config.DB.Where("id = ?", promoUUID).Delete(&models.Promo{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete promo")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Promo not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promo deleted successfully"})
}

// ValidatePromo checks a code against an order amount and returns the
// computed discount. Read-only; redemption happens at checkout.
func ValidatePromo(c *gin.Context) {
	var input ValidatePromoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var promo models.Promo
	if err := config.DB.First(&promo, "code = ?", input.Code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Promo code not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := promo.CanApply(input.OrderAmount, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"promo": gin.H{
			"code":               promo.Code,
			"description":        promo.Description,
			"discountType":       promo.DiscountType,
			"discountValue":      promo.DiscountValue,
			"calculatedDiscount": promo.CalculateDiscount(input.OrderAmount),
		},
	})
}
