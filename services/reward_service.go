// services/reward_service.go
package services

import (
	"errors"
	"os"
	"strconv"
	"time"

	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultRewardCoins = 500

type RewardService struct {
	db          *gorm.DB
	rewardCoins int64
}

func NewRewardService(db *gorm.DB) *RewardService {
	coins := int64(defaultRewardCoins)
	if env := os.Getenv("REFERRAL_REWARD_COINS"); env != "" {
		if n, err := strconv.ParseInt(env, 10, 64); err == nil && n > 0 {
			coins = n
		}
	}
	return &RewardService{db: db, rewardCoins: coins}
}

// CreditReferralReward credits the referrer of a client whose booking just
// completed. It fires at most once per client: the guard is a conditional
// update on users.referral_rewarded executed inside the same transaction as
// the wallet increment and the ledger insert, so two concurrent completions
// of the same client's bookings cannot double-credit.
//
// A referredBy code that matches no referral code is a no-op, not an error.
func (s *RewardService) CreditReferralReward(clientID uuid.UUID, bookingID uuid.UUID) error {
	var client models.User
	if err := s.db.First(&client, "id = ?", clientID).Error; err != nil {
		return err
	}
	if client.ReferredBy == nil || *client.ReferredBy == "" {
		return nil
	}
	if client.ReferralRewarded {
		return nil
	}

	var referrer models.User
	err := s.db.First(&referrer, "referral_code = ?", *client.ReferredBy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// referredBy is a loose string match; stale codes are silently ignored
		return nil
	}
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND referral_rewarded = ?", client.ID, false).
			Update("referral_rewarded", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// someone else already claimed the reward for this client
			return nil
		}

		wallet, err := s.ensureWallet(tx, referrer.ID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
			Update("coins", gorm.Expr("coins + ?", s.rewardCoins)).Error; err != nil {
			return err
		}

		trx := models.Transaction{
			WalletID:    wallet.ID,
			UserID:      referrer.ID,
			Coins:       s.rewardCoins,
			Type:        models.TrxReferralReward,
			Status:      models.TrxSuccess,
			Reference:   &bookingID,
			Description: "Referral reward for first completed booking of " + client.Name,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		utils.Log.WithField("referrer", referrer.ID).
			WithField("client", client.ID).
			Info("referral reward credited")
		return nil
	})
}

// ensureWallet lazily creates the referrer's wallet on first credit.
func (s *RewardService) ensureWallet(tx *gorm.DB, userID uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.First(&wallet, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{UserID: userID}
		if err := tx.Create(&wallet).Error; err != nil {
			return nil, err
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// RecordRefund appends a refund transaction for a client's refunded booking.
func (s *RewardService) RecordRefund(booking *models.Booking) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		wallet, err := s.ensureWallet(tx, booking.ClientID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
			Update("balance", gorm.Expr("balance + ?", booking.TotalPrice)).Error; err != nil {
			return err
		}
		trx := models.Transaction{
			WalletID:    wallet.ID,
			UserID:      booking.ClientID,
			Amount:      booking.TotalPrice,
			Type:        models.TrxRefund,
			Status:      models.TrxSuccess,
			Reference:   &booking.ID,
			Description: "Refund for booking " + booking.ID.String()[:8] + " (" + time.Now().Format("2006-01-02") + ")",
		}
		return tx.Create(&trx).Error
	})
}
