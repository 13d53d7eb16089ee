package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign location types
const (
	LocationAcademy = "academy"
	LocationShop    = "shop"
	LocationGround  = "ground"
	LocationNets    = "nets"
)

// Campaign is a marketing-distributed referral code not tied to a real user.
// Each campaign is backed by a synthetic User record whose only purpose is to
// hold the referral code, so signups citing the code resolve through the same
// path as user-to-user referrals.
type Campaign struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Code         string    `gorm:"uniqueIndex;size:20;not null" json:"code"`
	HolderUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"holderUserId"`

	LocationType string `gorm:"type:varchar(20);not null" json:"locationType"` // academy, shop, ground or nets
	LocationName string `json:"locationName"`
	City         string `json:"city"`

	SignupCount int  `gorm:"default:0" json:"signupCount"`
	IsActive    bool `gorm:"default:true" json:"isActive"`

	HolderUser User `gorm:"foreignKey:HolderUserID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
