package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

var (
	ErrPromoInactive    = errors.New("promo code is not active")
	ErrPromoNotStarted  = errors.New("promo code is not valid yet")
	ErrPromoExpired     = errors.New("promo code has expired")
	ErrPromoExhausted   = errors.New("promo code usage limit reached")
	ErrPromoMinOrder    = errors.New("order amount below promo minimum")
	ErrPromoInvalidType = errors.New("unknown promo discount type")
)

// Promo is a discount code validated against activity, date window and usage cap.
type Promo struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code        string    `gorm:"uniqueIndex;size:30;not null" json:"code"`
	Description string    `json:"description"`

	DiscountType  string  `gorm:"type:varchar(20);not null" json:"discountType"` // 'percentage' or 'flat'
	DiscountValue float64 `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	MaxDiscount   float64 `gorm:"type:decimal(10,2);default:0.0" json:"maxDiscount"` // cap for percentage, 0 = uncapped

	MinOrderAmount float64 `gorm:"type:decimal(10,2);default:0.0" json:"minOrderAmount"`
	MaxUses        int     `gorm:"not null" json:"maxUses"`
	UsedCount      int     `gorm:"default:0" json:"usedCount"`

	ValidFrom  time.Time `gorm:"not null" json:"validFrom"`
	ValidUntil time.Time `gorm:"not null" json:"validUntil"`
	IsActive   bool      `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

func (p *Promo) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// CanApply checks activity, validity window, usage cap and order minimum.
func (p *Promo) CanApply(orderAmount float64, now time.Time) error {
	if !p.IsActive {
		return ErrPromoInactive
	}
	if now.Before(p.ValidFrom) {
		return ErrPromoNotStarted
	}
	if now.After(p.ValidUntil) {
		return ErrPromoExpired
	}
	if p.UsedCount >= p.MaxUses {
		return ErrPromoExhausted
	}
	if orderAmount < p.MinOrderAmount {
		return ErrPromoMinOrder
	}
	return nil
}

// CalculateDiscount computes the discount for an order amount. Percentage
// discounts respect MaxDiscount when set; no discount ever exceeds the order
// amount itself.
func (p *Promo) CalculateDiscount(orderAmount float64) float64 {
	var discount float64
	switch p.DiscountType {
	case DiscountPercentage:
		discount = orderAmount * p.DiscountValue / 100
		if p.MaxDiscount > 0 && discount > p.MaxDiscount {
			discount = p.MaxDiscount
		}
	case DiscountFlat:
		discount = p.DiscountValue
	}
	if discount > orderAmount {
		discount = orderAmount
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
