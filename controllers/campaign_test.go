package controllers

import (
	"net/http"
	"testing"

	"crickpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCampaignsCreatesSyntheticHolders(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()
	admin := createTestUser(t, db, models.RoleAdmin, nil)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns/generate", tokenFor(t, admin),
		GenerateCampaignsInput{
			Count:        5,
			Name:         "Winter nets drive",
			LocationType: models.LocationNets,
			City:         "Mumbai",
		})
	require.Equal(t, http.StatusCreated, w.Code)

	var campaigns []models.Campaign
	require.NoError(t, db.Find(&campaigns).Error)
	require.Len(t, campaigns, 5)

	seen := make(map[string]bool)
	for _, campaign := range campaigns {
		assert.False(t, seen[campaign.Code], "duplicate code %s", campaign.Code)
		seen[campaign.Code] = true

		var holder models.User
		require.NoError(t, db.First(&holder, "id = ?", campaign.HolderUserID).Error)
		assert.Equal(t, campaign.Code, holder.ReferralCode)
		assert.False(t, holder.IsActive)
	}
}

func TestGenerateCampaignsRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()
	client := createTestUser(t, db, models.RoleClient, nil)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns/generate", tokenFor(t, client),
		GenerateCampaignsInput{Count: 1, Name: "x", LocationType: models.LocationShop})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterWithCampaignCodeCountsSignup(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter()
	admin := createTestUser(t, db, models.RoleAdmin, nil)

	w := doJSON(t, r, http.MethodPost, "/api/campaigns/generate", tokenFor(t, admin),
		GenerateCampaignsInput{Count: 1, Name: "Academy flyer", LocationType: models.LocationAcademy})
	require.Equal(t, http.StatusCreated, w.Code)

	var campaign models.Campaign
	require.NoError(t, db.First(&campaign).Error)

	w = doJSON(t, r, http.MethodPost, "/auth/register", "", RegisterInput{
		Email:      "newclient@example.com",
		Phone:      "+919812345678",
		Name:       "New Client",
		Password:   "password123",
		ReferredBy: campaign.Code,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, db.First(&campaign, "id = ?", campaign.ID).Error)
	assert.Equal(t, 1, campaign.SignupCount)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "newclient@example.com").Error)
	require.NotNil(t, user.ReferredBy)
	assert.Equal(t, campaign.Code, *user.ReferredBy)
}
