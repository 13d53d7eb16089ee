package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types
const (
	TrxReferralReward = "REFERRAL_REWARD"
	TrxCredit         = "CREDIT"
	TrxDebit          = "DEBIT"
	TrxRefund         = "REFUND"
)

// Transaction statuses
const (
	TrxSuccess = "SUCCESS"
	TrxFailed  = "FAILED"
)

// Wallet is one-to-one with a user. It is created lazily on first credit.
type Wallet struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Balance float64   `gorm:"type:decimal(10,2);default:0.0" json:"balance"`
	Coins   int64     `gorm:"default:0" json:"coins"`

	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:WalletID" json:"-"`

	gorm.Model `json:"-"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}

// Transaction is an append-only record of a wallet credit or debit.
type Transaction struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WalletID uuid.UUID `gorm:"type:uuid;index;not null" json:"walletId"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Amount      float64    `gorm:"type:decimal(10,2);default:0.0" json:"amount"`
	Coins       int64      `gorm:"default:0" json:"coins"`
	Type        string     `gorm:"type:varchar(30);not null" json:"type"`
	Status      string     `gorm:"type:varchar(20);not null" json:"status"`
	Reference   *uuid.UUID `gorm:"type:uuid;index" json:"reference,omitempty"` // e.g. the booking that earned it
	Description string     `gorm:"type:text" json:"description"`

	gorm.Model `json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
