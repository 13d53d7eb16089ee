package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobOpen   = "open"
	JobClosed = "closed"
)

// Job is a work posting a client publishes for freelancers to find.
type Job struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PostedByID uuid.UUID `gorm:"type:uuid;index;not null" json:"postedById"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"type:varchar(20)" json:"category"`
	Location    string  `json:"location"`
	Skills      string  `json:"skills"` // comma separated
	BudgetMin   float64 `gorm:"type:decimal(10,2);default:0.0" json:"budgetMin"`
	BudgetMax   float64 `gorm:"type:decimal(10,2);default:0.0" json:"budgetMax"`
	Status      string  `gorm:"type:varchar(20);default:'open'" json:"status"`

	PostedBy User `gorm:"foreignKey:PostedByID" json:"-"`

	gorm.Model `json:"-"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}
