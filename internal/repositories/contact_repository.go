package repositories

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact submission not found")
)

type ContactRepository interface {
	Create(submission *models.ContactSubmission) error
	FindByID(id string) (*models.ContactSubmission, error)
	FindByStatus(status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, error)
	UpdateStatus(id string, status models.ContactStatus, followUp *time.Time) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(submission *models.ContactSubmission) error {
	if err := r.db.Create(submission).Error; err != nil {
		return appErrors.FromDBError(err, "contact_submissions")
	}
	return nil
}

func (r *ContactRepositoryImpl) FindByID(id string) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, appErrors.FromDBError(err, "contact_submissions")
	}
	return &submission, nil
}

func (r *ContactRepositoryImpl) FindByStatus(status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	q := r.db.Where("status = ?", status).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&submissions).Error; err != nil {
		return nil, appErrors.FromDBError(err, "contact_submissions")
	}
	return submissions, nil
}

func (r *ContactRepositoryImpl) UpdateStatus(id string, status models.ContactStatus, followUp *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if followUp != nil {
		updates["follow_up_date"] = followUp
	}
	res := r.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "contact_submissions")
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
