package repositories

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPerformanceNotFound = errors.New("trading performance record not found")
)

type PerformanceRepository interface {
	Create(record *models.TradingPerformance) error
	FindByID(id string) (*models.TradingPerformance, error)
	FindByClient(clientID string) ([]models.TradingPerformance, error)
	FindByClientMonth(clientID string, month time.Time) (*models.TradingPerformance, error)
	Update(record *models.TradingPerformance) error
}

type PerformanceRepositoryImpl struct {
	db *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &PerformanceRepositoryImpl{db: db}
}

func (r *PerformanceRepositoryImpl) Create(record *models.TradingPerformance) error {
	// Пара (client, month) уникальна; месяц нормализуем здесь же,
	// чтобы индекс сравнивал одинаковые значения.
	record.Month = models.MonthKey(record.Month)
	if err := r.db.Create(record).Error; err != nil {
		return appErrors.FromDBError(err, "trading_performance")
	}
	return nil
}

func (r *PerformanceRepositoryImpl) FindByID(id string) (*models.TradingPerformance, error) {
	var record models.TradingPerformance
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, appErrors.FromDBError(err, "trading_performance")
	}
	return &record, nil
}

func (r *PerformanceRepositoryImpl) FindByClient(clientID string) ([]models.TradingPerformance, error) {
	var records []models.TradingPerformance
	err := r.db.Where("client_id = ?", clientID).Order("month DESC").Find(&records).Error
	if err != nil {
		return nil, appErrors.FromDBError(err, "trading_performance")
	}
	return records, nil
}

func (r *PerformanceRepositoryImpl) FindByClientMonth(clientID string, month time.Time) (*models.TradingPerformance, error) {
	var record models.TradingPerformance
	err := r.db.First(&record, "client_id = ? AND month = ?", clientID, models.MonthKey(month)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, appErrors.FromDBError(err, "trading_performance")
	}
	return &record, nil
}

func (r *PerformanceRepositoryImpl) Update(record *models.TradingPerformance) error {
	record.Month = models.MonthKey(record.Month)
	if err := r.db.Save(record).Error; err != nil {
		return appErrors.FromDBError(err, "trading_performance")
	}
	return nil
}
