// services/scheduler_service.go
package services

import (
	"time"

	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type SchedulerService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewSchedulerService(db *gorm.DB, notifier *NotificationService) *SchedulerService {
	return &SchedulerService{db: db, notifier: notifier}
}

func (s *SchedulerService) Start() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.ExpirePromos()
		s.SendBookingReminders()
	})

	c.Start()
	utils.Log.Println("Daily scheduler started")
}

// ExpirePromos deactivates promo codes whose validity window has passed.
func (s *SchedulerService) ExpirePromos() {
	res := s.db.Model(&models.Promo{}).
		Where("is_active = ? AND valid_until < ?", true, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		utils.Log.Printf("Failed to expire promos: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		utils.Log.Printf("Deactivated %d expired promos", res.RowsAffected)
	}
}

// SendBookingReminders notifies clients of confirmed sessions happening tomorrow.
func (s *SchedulerService) SendBookingReminders() {
	start := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	end := start.Add(24 * time.Hour)

	var bookings []models.Booking
	if err := s.db.Where("status = ? AND scheduled_at >= ? AND scheduled_at < ?",
		models.StatusConfirmed, start, end).Find(&bookings).Error; err != nil {
		utils.Log.Printf("Failed to fetch upcoming bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		var client models.User
		if err := s.db.First(&client, "id = ?", booking.ClientID).Error; err != nil {
			utils.Log.Printf("Booking %s: failed to load client: %v", booking.ID, err)
			continue
		}
		s.notifier.NotifyBookingReminder(&booking, &client)
	}
}
