package services

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"
)

// SessionService зеркалирует сессии внешнего auth-провайдера для аудита.
// Caller-facing операций у сессий нет - policy-таблица для них пуста,
// пишет сюда только само приложение на login/logout.
type SessionService interface {
	RecordLogin(clientID, token, ip, userAgent string) (*models.UserSession, error)
	TouchActivity(token string) error
	Logout(token string) error
	LogoutAll(clientID string) error
	ListActive(clientID string) ([]models.UserSession, error)
}

type sessionService struct {
	sessionRepo repositories.SessionRepository
	clientRepo  repositories.ClientRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository, clientRepo repositories.ClientRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo, clientRepo: clientRepo}
}

func (s *sessionService) RecordLogin(clientID, token, ip, userAgent string) (*models.UserSession, error) {
	now := time.Now()
	session := &models.UserSession{
		ClientID:     clientID,
		SessionToken: token,
		IPAddress:    ip,
		UserAgent:    userAgent,
		LoginAt:      now,
		LastActivity: now,
		IsActive:     true,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	// last_login клиента двигается вместе с зеркалом сессии
	if err := s.clientRepo.UpdateLastLogin(clientID, now); err != nil &&
		!errors.Is(err, repositories.ErrClientNotFound) {
		return nil, err
	}

	return session, nil
}

func (s *sessionService) TouchActivity(token string) error {
	if err := s.sessionRepo.TouchActivity(token, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return appErrors.ErrNotFound(err, "session")
		}
		return err
	}
	return nil
}

func (s *sessionService) Logout(token string) error {
	if err := s.sessionRepo.Deactivate(token); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return appErrors.ErrNotFound(err, "session")
		}
		return err
	}
	return nil
}

func (s *sessionService) LogoutAll(clientID string) error {
	return s.sessionRepo.DeactivateAllForClient(clientID)
}

func (s *sessionService) ListActive(clientID string) ([]models.UserSession, error) {
	return s.sessionRepo.FindActiveByClient(clientID)
}
