package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPromo() Promo {
	return Promo{
		Code:          "TEST",
		DiscountType:  DiscountFlat,
		DiscountValue: 100,
		MaxUses:       10,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func TestPromoCanApply(t *testing.T) {
	now := time.Now()

	p := validPromo()
	assert.NoError(t, p.CanApply(500, now))

	p = validPromo()
	p.IsActive = false
	assert.ErrorIs(t, p.CanApply(500, now), ErrPromoInactive)

	p = validPromo()
	p.ValidFrom = now.Add(time.Hour)
	assert.ErrorIs(t, p.CanApply(500, now), ErrPromoNotStarted)

	p = validPromo()
	p.ValidUntil = now.Add(-time.Minute)
	assert.ErrorIs(t, p.CanApply(500, now), ErrPromoExpired)

	p = validPromo()
	p.UsedCount = p.MaxUses
	assert.ErrorIs(t, p.CanApply(500, now), ErrPromoExhausted)

	p = validPromo()
	p.MinOrderAmount = 1000
	assert.ErrorIs(t, p.CanApply(500, now), ErrPromoMinOrder)
}

func TestPromoCalculateDiscountPercentage(t *testing.T) {
	p := Promo{DiscountType: DiscountPercentage, DiscountValue: 20}
	assert.InDelta(t, 200, p.CalculateDiscount(1000), 0.001)

	// capped by MaxDiscount
	p.MaxDiscount = 150
	assert.InDelta(t, 150, p.CalculateDiscount(1000), 0.001)
}

func TestPromoCalculateDiscountFlat(t *testing.T) {
	p := Promo{DiscountType: DiscountFlat, DiscountValue: 300}
	assert.InDelta(t, 300, p.CalculateDiscount(1000), 0.001)

	// never exceeds the order amount
	assert.InDelta(t, 250, p.CalculateDiscount(250), 0.001)
}

func TestPromoCalculateDiscountUnknownType(t *testing.T) {
	p := Promo{DiscountType: "mystery", DiscountValue: 300}
	assert.Zero(t, p.CalculateDiscount(1000))
}
