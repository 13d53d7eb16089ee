package models

import (
	"crickpro-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	Role string `gorm:"type:varchar(20);not null" json:"role"` // 'client', 'freelancer' or 'admin'

	// ReferralCode is this user's own shareable code. ReferredBy is a loose
	// string match against someone else's ReferralCode (or a campaign code),
	// not a foreign key.
	ReferralCode     string  `gorm:"uniqueIndex;size:20;not null" json:"referralCode"`
	ReferredBy       *string `gorm:"size:20" json:"referredBy,omitempty"`
	ReferralRewarded bool    `gorm:"default:false" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Services []Service `gorm:"foreignKey:FreelancerID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model `json:"-"`
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
