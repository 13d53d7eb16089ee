package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
	StatusDisputed   BookingStatus = "DISPUTED"
	StatusRefunded   BookingStatus = "REFUNDED"
)

// validTransitions defines the state machine for booking status transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusDisputed},
	StatusCompleted:  {StatusDisputed},
	StatusDisputed:   {StatusCompleted, StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Booking is a scheduled engagement between a client and a service provider.
// Bookings are never hard-deleted; cancellation is a status, not a row removal.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ScheduledAt time.Time     `gorm:"not null" json:"scheduledAt"`
	TotalPrice  float64       `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Discount    float64       `gorm:"type:decimal(10,2);default:0.0" json:"discount"`
	PromoCode   string        `json:"promoCode,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes"`
	Rating      *int          `json:"rating,omitempty"`
	Review      string        `gorm:"type:text" json:"review,omitempty"`

	Client  User    `gorm:"foreignKey:ClientID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`

	gorm.Model `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
