package repositories

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(session *models.UserSession) error
	FindByToken(token string) (*models.UserSession, error)
	FindActiveByClient(clientID string) ([]models.UserSession, error)
	TouchActivity(token string, at time.Time) error
	Deactivate(token string) error
	DeactivateAllForClient(clientID string) error
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(session *models.UserSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return appErrors.FromDBError(err, "user_sessions")
	}
	return nil
}

func (r *SessionRepositoryImpl) FindByToken(token string) (*models.UserSession, error) {
	var session models.UserSession
	err := r.db.First(&session, "session_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, appErrors.FromDBError(err, "user_sessions")
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) FindActiveByClient(clientID string) ([]models.UserSession, error) {
	var sessions []models.UserSession
	err := r.db.Where("client_id = ? AND is_active = ?", clientID, true).
		Order("login_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, appErrors.FromDBError(err, "user_sessions")
	}
	return sessions, nil
}

func (r *SessionRepositoryImpl) TouchActivity(token string, at time.Time) error {
	res := r.db.Model(&models.UserSession{}).Where("session_token = ?", token).
		Update("last_activity", at)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "user_sessions")
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepositoryImpl) Deactivate(token string) error {
	res := r.db.Model(&models.UserSession{}).Where("session_token = ?", token).
		Update("is_active", false)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "user_sessions")
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepositoryImpl) DeactivateAllForClient(clientID string) error {
	err := r.db.Model(&models.UserSession{}).Where("client_id = ?", clientID).
		Update("is_active", false).Error
	if err != nil {
		return appErrors.FromDBError(err, "user_sessions")
	}
	return nil
}
