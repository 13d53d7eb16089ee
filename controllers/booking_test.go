package controllers

import (
	"net/http"
	"testing"
	"time"

	"crickpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingRequiresNotes(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	client := createTestUser(t, db, models.RoleClient, nil)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	service := createTestService(t, db, freelancer.ID, 1500)
	booking := createTestBooking(t, db, client.ID, service.ID, models.StatusPending)

	status := models.StatusCancelled
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	notes := "rained out"
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status, Notes: &notes})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Booking
	require.NoError(t, db.First(&got, "id = ?", booking.ID).Error)
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.Equal(t, "rained out", got.Notes)
}

func TestCompleteBookingRequiresReview(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	client := createTestUser(t, db, models.RoleClient, nil)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	service := createTestService(t, db, freelancer.ID, 1500)
	booking := createTestBooking(t, db, client.ID, service.ID, models.StatusInProgress)

	status := models.StatusCompleted
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	review := "Great bowling drills"
	rating := 5
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status, Review: &review, Rating: &rating})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Booking
	require.NoError(t, db.First(&got, "id = ?", booking.ID).Error)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "Great bowling drills", got.Review)
}

func TestIllegalTransitionRejected(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	client := createTestUser(t, db, models.RoleClient, nil)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	service := createTestService(t, db, freelancer.ID, 1500)
	booking := createTestBooking(t, db, client.ID, service.ID, models.StatusPending)

	// PENDING cannot jump straight to COMPLETED
	status := models.StatusCompleted
	review := "skipping ahead"
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status, Review: &review})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingUpdateRequiresParticipant(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	client := createTestUser(t, db, models.RoleClient, nil)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	stranger := createTestUser(t, db, models.RoleClient, nil)
	service := createTestService(t, db, freelancer.ID, 1500)
	booking := createTestBooking(t, db, client.ID, service.ID, models.StatusPending)

	status := models.StatusConfirmed
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, stranger),
		UpdateBookingInput{Status: &status})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// the provider can confirm
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, freelancer),
		UpdateBookingInput{Status: &status})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReferralRewardOnFirstCompletion(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	referrer := createTestUser(t, db, models.RoleClient, nil)
	client := createTestUser(t, db, models.RoleClient, &referrer.ReferralCode)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	service := createTestService(t, db, freelancer.ID, 1500)
	booking := createTestBooking(t, db, client.ID, service.ID, models.StatusInProgress)

	status := models.StatusCompleted
	review := "Sharp analysis"
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status, Review: &review})
	require.Equal(t, http.StatusOK, w.Code)

	var wallet models.Wallet
	require.NoError(t, db.First(&wallet, "user_id = ?", referrer.ID).Error)
	assert.Equal(t, int64(500), wallet.Coins)

	var count int64
	db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", referrer.ID, models.TrxReferralReward).Count(&count)
	assert.Equal(t, int64(1), count)

	// A second completed booking by the same client earns nothing extra.
	second := createTestBooking(t, db, client.ID, service.ID, models.StatusInProgress)
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+second.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status, Review: &review})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&wallet, "user_id = ?", referrer.ID).Error)
	assert.Equal(t, int64(500), wallet.Coins)

	db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", referrer.ID, models.TrxReferralReward).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUnknownReferralCodeCreditsNothing(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	bogus := "CRK-GHOST1"
	client := createTestUser(t, db, models.RoleClient, &bogus)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	service := createTestService(t, db, freelancer.ID, 1500)
	booking := createTestBooking(t, db, client.ID, service.ID, models.StatusInProgress)

	status := models.StatusCompleted
	review := "Good session"
	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+booking.ID.String(), tokenFor(t, client),
		UpdateBookingInput{Status: &status, Review: &review})
	require.Equal(t, http.StatusOK, w.Code)

	var wallets, transactions int64
	db.Model(&models.Wallet{}).Count(&wallets)
	db.Model(&models.Transaction{}).Count(&transactions)
	assert.Zero(t, wallets)
	assert.Zero(t, transactions)
}

func TestCheckoutAppliesPromoAndEnforcesCap(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()

	client := createTestUser(t, db, models.RoleClient, nil)
	other := createTestUser(t, db, models.RoleClient, nil)
	freelancer := createTestUser(t, db, models.RoleFreelancer, nil)
	service := createTestService(t, db, freelancer.ID, 2000)

	promo := models.Promo{
		Code:          "OPENER10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		MaxUses:       1,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		IsActive:      true,
	}
	require.NoError(t, db.Create(&promo).Error)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", tokenFor(t, client), CreateBookingInput{
		ServiceID:   service.ID,
		ScheduledAt: time.Now().Add(72 * time.Hour),
		PromoCode:   "OPENER10",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.InDelta(t, 1800.0, body["totalPrice"], 0.001)
	assert.InDelta(t, 200.0, body["discount"], 0.001)

	// cap is one use; a second redemption is rejected
	w = doJSON(t, r, http.MethodPost, "/api/bookings", tokenFor(t, other), CreateBookingInput{
		ServiceID:   service.ID,
		ScheduledAt: time.Now().Add(96 * time.Hour),
		PromoCode:   "OPENER10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
