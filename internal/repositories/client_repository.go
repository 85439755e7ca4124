package repositories

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClientNotFound = errors.New("client not found")
)

type ClientRepository interface {
	Create(client *models.Client) error
	FindByID(id string) (*models.Client, error)
	FindByEmail(email string) (*models.Client, error)
	Update(client *models.Client) error
	UpdateStatus(clientID string, status models.ClientStatus) error
	UpdatePaymentStatus(clientID string, status models.ClientPaymentStatus) error
	UpdateLastLogin(clientID string, at time.Time) error
	Delete(clientID string) error
	CountAll() (int64, error)
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) Create(client *models.Client) error {
	if err := r.db.Create(client).Error; err != nil {
		return appErrors.FromDBError(err, "clients")
	}
	return nil
}

func (r *ClientRepositoryImpl) FindByID(id string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, appErrors.FromDBError(err, "clients")
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, appErrors.FromDBError(err, "clients")
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) Update(client *models.Client) error {
	if err := r.db.Save(client).Error; err != nil {
		return appErrors.FromDBError(err, "clients")
	}
	return nil
}

func (r *ClientRepositoryImpl) UpdateStatus(clientID string, status models.ClientStatus) error {
	res := r.db.Model(&models.Client{}).Where("id = ?", clientID).Update("status", status)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "clients")
	}
	if res.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) UpdatePaymentStatus(clientID string, status models.ClientPaymentStatus) error {
	res := r.db.Model(&models.Client{}).Where("id = ?", clientID).Update("payment_status", status)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "clients")
	}
	if res.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) UpdateLastLogin(clientID string, at time.Time) error {
	res := r.db.Model(&models.Client{}).Where("id = ?", clientID).Update("last_login", at)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "clients")
	}
	if res.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete удаляет клиента жестко. Вызывается только обслуживанием данных:
// пользовательский lifecycle - это смена Status. Каскад уносит bookings,
// payments, user_sessions и trading_performance.
func (r *ClientRepositoryImpl) Delete(clientID string) error {
	res := r.db.Delete(&models.Client{}, "id = ?", clientID)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "clients")
	}
	if res.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *ClientRepositoryImpl) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Client{}).Count(&count).Error; err != nil {
		return 0, appErrors.FromDBError(err, "clients")
	}
	return count, nil
}
