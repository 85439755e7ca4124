package database

import (
	"fmt"

	"tradelab_backend/internal/config"
	"tradelab_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из config.yaml
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Переводит ошибки драйвера в gorm.ErrDuplicatedKey и т.п.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Course{},
		&models.MentorshipProgram{},
		&models.Booking{},
		&models.Payment{},
		&models.ContactSubmission{},
		&models.UserSession{},
		&models.NewsletterSubscriber{},
		&models.TradingPerformance{},
	)
}
