package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"crickpro-backend/config"
	"crickpro-backend/models"
	"crickpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
}

// setupTestDB wires config.DB to a fresh in-memory SQLite database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Promo{},
		&models.Campaign{},
		&models.Job{},
		&models.SupportTicket{},
		&models.NotificationLog{},
	))

	config.DB = db
	t.Cleanup(func() {
		config.DB = nil
		sqlDB.Close()
	})
	return db
}

func setupTestRouter() *gin.Engine {
	r := gin.New()

	auth := r.Group("/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)
	auth.Use(utils.AuthMiddleware())
	auth.GET("/me", Me)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	api.POST("/bookings", CreateBooking)
	api.GET("/bookings", GetBookings)
	api.GET("/bookings/:id", GetBooking)
	api.PUT("/bookings/:id", UpdateBooking)
	api.POST("/promos/validate", ValidatePromo)
	api.POST("/campaigns/generate", utils.RequireRole(models.RoleAdmin), GenerateCampaigns)
	api.GET("/wallet", GetWallet)
	api.GET("/wallet/transactions", GetWalletTransactions)

	return r
}

func createTestUser(t *testing.T, db *gorm.DB, role string, referredBy *string) models.User {
	t.Helper()
	user := models.User{
		Email:        uuid.NewString()[:8] + "@example.com",
		Password:     "password123",
		Name:         "Test " + role,
		Phone:        "+9198" + uuid.NewString()[:8],
		Role:         role,
		ReferralCode: utils.GenerateReferralCode("CRK", 6),
		ReferredBy:   referredBy,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestService(t *testing.T, db *gorm.DB, freelancerID uuid.UUID, price float64) models.Service {
	t.Helper()
	service := models.Service{
		FreelancerID: freelancerID,
		Title:        "Net bowling session",
		Category:     models.CategoryBowling,
		Price:        price,
		Duration:     60,
		Location:     "Pune",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func createTestBooking(t *testing.T, db *gorm.DB, clientID, serviceID uuid.UUID, status models.BookingStatus) models.Booking {
	t.Helper()
	booking := models.Booking{
		ClientID:    clientID,
		ServiceID:   serviceID,
		Status:      status,
		ScheduledAt: time.Now().Add(48 * time.Hour),
		TotalPrice:  1500,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
