// services/notification_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// DefaultNotifier is set at startup; controllers fire notifications through it
// when present. Left nil in tests so handlers stay side-effect free.
var DefaultNotifier *NotificationService

type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// NotifyBookingStatus tells the client their booking moved to a new status.
// Errors are logged, never propagated; the status update already succeeded.
func (s *NotificationService) NotifyBookingStatus(booking *models.Booking) {
	var client models.User
	if err := s.db.First(&client, "id = ?", booking.ClientID).Error; err != nil {
		utils.Log.Printf("Failed to load client for booking %s: %v", booking.ID, err)
		return
	}
	if client.Phone == "" {
		return
	}

	var message string
	switch booking.Status {
	case models.StatusInProgress:
		message = fmt.Sprintf("Hi %s, your session on %s has started. Have a great game!",
			client.Name, booking.ScheduledAt.Format("02 Jan 15:04"))
	case models.StatusCompleted:
		message = fmt.Sprintf("Hi %s, your session is complete. Thanks for booking with us!",
			client.Name)
	default:
		return
	}

	s.send(client, &booking.ID, message)
}

// NotifyBookingReminder reminds the client about an upcoming confirmed session.
func (s *NotificationService) NotifyBookingReminder(booking *models.Booking, client *models.User) {
	if client.Phone == "" {
		return
	}
	message := fmt.Sprintf("Hi %s, reminder: your session is scheduled for %s.",
		client.Name, booking.ScheduledAt.Format("02 Jan 15:04"))
	s.send(*client, &booking.ID, message)
}

func (s *NotificationService) send(user models.User, bookingID *uuid.UUID, message string) {
	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := user.Phone
	if strings.HasPrefix(user.Phone, "+") {
		to = "whatsapp:" + user.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		utils.Log.Printf("Failed to send message to %s: %v", user.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		utils.Log.Printf("Message sent to %s, SID: %s", user.Phone, *resp.Sid)
	} else {
		utils.Log.Printf("Message sent to %s, but no SID returned", user.Phone)
	}

	notificationLog := models.NotificationLog{
		UserID:       user.ID,
		BookingID:    bookingID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&notificationLog).Error; err != nil {
		utils.Log.Printf("Failed to log notification for user %s: %v", user.ID, err)
	}
}
