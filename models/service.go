package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories a freelancer can offer
const (
	CategoryCoaching = "coaching"
	CategoryBowling  = "bowling"
	CategoryUmpiring = "umpiring"
	CategoryAnalysis = "analysis"
	CategoryFitness  = "fitness"
)

type Service struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FreelancerID uuid.UUID `gorm:"type:uuid;index;not null" json:"freelancerId"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Category    string  `gorm:"type:varchar(20);not null" json:"category"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int     `json:"duration"` // in minutes
	Location    string  `json:"location"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	Freelancer User      `gorm:"foreignKey:FreelancerID" json:"-"`
	Bookings   []Booking `gorm:"foreignKey:ServiceID" json:"-"`

	gorm.Model `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
