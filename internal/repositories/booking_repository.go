package repositories

import (
	"errors"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingRepository interface {
	Create(booking *models.Booking) error
	FindByID(id string) (*models.Booking, error)
	FindByClient(clientID string, limit, offset int) ([]models.Booking, error)
	UpdateStatus(id string, status models.BookingStatus) error
	Update(booking *models.Booking) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return appErrors.FromDBError(err, "bookings")
	}
	return nil
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, appErrors.FromDBError(err, "bookings")
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByClient(clientID string, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.Where("client_id = ?", clientID).Order("session_date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, appErrors.FromDBError(err, "bookings")
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) UpdateStatus(id string, status models.BookingStatus) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "bookings")
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) Update(booking *models.Booking) error {
	if err := r.db.Save(booking).Error; err != nil {
		return appErrors.FromDBError(err, "bookings")
	}
	return nil
}
