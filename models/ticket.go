package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

type SupportTicket struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"type:varchar(20);default:'open'" json:"status"`
	Reply   string `gorm:"type:text" json:"reply,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`

	gorm.Model `json:"-"`
}

func (t *SupportTicket) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
