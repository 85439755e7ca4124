package helpers

import (
	"fmt"
	"testing"
	"time"

	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/config"
	"tradelab_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateClient создает клиента с уникальным email.
func CreateClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	client := &models.Client{
		Name:          name,
		Email:         fmt.Sprintf("client_%d@test.com", time.Now().UnixNano()),
		PaymentStatus: models.ClientPaymentPending,
		Status:        models.ClientStatusActive,
	}
	err := db.Create(client).Error
	require.NoError(t, err, "Создание тестового клиента не должно вызывать ошибку")
	return client
}

// TokenFor выпускает токен для клиента тем же секретом, что и сервер.
func TokenFor(t *testing.T, clientID string) string {
	cfg := config.GetConfig()
	token, err := auth.GenerateToken(clientID, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err, "Не удалось выпустить тестовый токен")
	return token
}

// CreateAndLoginClient создает клиента и возвращает его вместе с токеном.
func CreateAndLoginClient(t *testing.T, db *gorm.DB, name string) (string, *models.Client) {
	client := CreateClient(t, db, name)
	return TokenFor(t, client.ID), client
}

// CreateTestBooking создает бронь для клиента.
func CreateTestBooking(t *testing.T, db *gorm.DB, clientID string, sessionDate time.Time) models.Booking {
	booking := models.Booking{
		ClientID:        clientID,
		SessionDate:     sessionDate,
		SessionType:     models.SessionTypeOneOnOne,
		DurationMinutes: 60,
		Status:          models.BookingStatusScheduled,
	}
	err := db.Create(&booking).Error
	require.NoError(t, err, "Не удалось создать тестовую бронь")
	return booking
}

// CreateTestPayment создает платеж с уникальным transaction id.
func CreateTestPayment(t *testing.T, db *gorm.DB, clientID string, amount float64, status models.PaymentStatus) models.Payment {
	payment := models.Payment{
		ClientID:      clientID,
		Amount:        amount,
		Currency:      "USD",
		TransactionID: fmt.Sprintf("txn_%d", time.Now().UnixNano()),
		PaymentType:   models.PaymentTypeConsultation,
		Status:        status,
		PaymentDate:   time.Now(),
	}
	err := db.Create(&payment).Error
	require.NoError(t, err, "Не удалось создать тестовый платеж")
	return payment
}

// CreateTestPerformance создает месячную запись статистики.
func CreateTestPerformance(t *testing.T, db *gorm.DB, clientID string, month time.Time) models.TradingPerformance {
	record := models.TradingPerformance{
		ClientID:      clientID,
		Month:         models.MonthKey(month),
		TotalTrades:   40,
		WinningTrades: 25,
		LosingTrades:  15,
		TotalPips:     320.5,
		ProfitLoss:    1250.0,
		WinRate:       62.5,
	}
	err := db.Create(&record).Error
	require.NoError(t, err, "Не удалось создать тестовую запись статистики")
	return record
}
