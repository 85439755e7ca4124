package repositories

import (
	"errors"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubscriberNotFound = errors.New("newsletter subscriber not found")
)

type NewsletterRepository interface {
	Create(subscriber *models.NewsletterSubscriber) error
	FindByEmail(email string) (*models.NewsletterSubscriber, error)
	UpdateStatus(email string, status models.SubscriberStatus) error
	CountByStatus(status models.SubscriberStatus) (int64, error)
}

type NewsletterRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &NewsletterRepositoryImpl{db: db}
}

func (r *NewsletterRepositoryImpl) Create(subscriber *models.NewsletterSubscriber) error {
	if err := r.db.Create(subscriber).Error; err != nil {
		return appErrors.FromDBError(err, "newsletter_subscribers")
	}
	return nil
}

func (r *NewsletterRepositoryImpl) FindByEmail(email string) (*models.NewsletterSubscriber, error) {
	var subscriber models.NewsletterSubscriber
	err := r.db.First(&subscriber, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriberNotFound
		}
		return nil, appErrors.FromDBError(err, "newsletter_subscribers")
	}
	return &subscriber, nil
}

func (r *NewsletterRepositoryImpl) UpdateStatus(email string, status models.SubscriberStatus) error {
	res := r.db.Model(&models.NewsletterSubscriber{}).Where("email = ?", email).
		Update("status", status)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "newsletter_subscribers")
	}
	if res.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}

func (r *NewsletterRepositoryImpl) CountByStatus(status models.SubscriberStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsletterSubscriber{}).Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, appErrors.FromDBError(err, "newsletter_subscribers")
	}
	return count, nil
}
