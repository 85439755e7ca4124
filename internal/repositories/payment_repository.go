package repositories

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	FindByTransactionID(txID string) (*models.Payment, error)
	FindByClient(clientID string, limit, offset int) ([]models.Payment, error)
	UpdateStatus(id string, status models.PaymentStatus) error
	MarkRefunded(id string, amount float64, reason string, at time.Time) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return appErrors.FromDBError(err, "payments")
	}
	return nil
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, appErrors.FromDBError(err, "payments")
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByTransactionID(txID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "transaction_id = ?", txID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, appErrors.FromDBError(err, "payments")
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByClient(clientID string, limit, offset int) ([]models.Payment, error) {
	var payments []models.Payment
	q := r.db.Where("client_id = ?", clientID).Order("payment_date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&payments).Error; err != nil {
		return nil, appErrors.FromDBError(err, "payments")
	}
	return payments, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(id string, status models.PaymentStatus) error {
	res := r.db.Model(&models.Payment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "payments")
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) MarkRefunded(id string, amount float64, reason string, at time.Time) error {
	res := r.db.Model(&models.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        models.PaymentStatusRefunded,
		"refund_amount": amount,
		"refund_reason": reason,
		"refund_date":   at,
	})
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "payments")
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
