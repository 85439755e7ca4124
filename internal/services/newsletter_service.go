package services

import (
	"encoding/json"
	"errors"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"

	"gorm.io/datatypes"
)

type NewsletterService interface {
	Subscribe(caller auth.Identity, req *dto.SubscribeRequest) (*models.NewsletterSubscriber, error)
	Unsubscribe(email string) error
	MarkBounced(email string) error
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepo: newsletterRepo}
}

// Subscribe доступен любому. Дубликат email вернет UniquenessViolation.
func (s *newsletterService) Subscribe(caller auth.Identity, req *dto.SubscribeRequest) (*models.NewsletterSubscriber, error) {
	if err := auth.Authorize(caller, auth.EntityNewsletter, auth.ActionCreate, auth.RowAttrs{}); err != nil {
		return nil, appErrors.AuthorizationDenied("newsletter subscription denied")
	}

	subscriber := &models.NewsletterSubscriber{
		Email:  req.Email,
		Status: models.SubscriberStatusActive,
	}

	if len(req.Preferences) > 0 {
		raw, err := json.Marshal(req.Preferences)
		if err != nil {
			return nil, appErrors.NewBadRequestError("invalid preferences payload")
		}
		subscriber.Preferences = datatypes.JSON(raw)
	}

	if err := s.newsletterRepo.Create(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Unsubscribe вызывается процессом рассылки по ссылке отписки.
func (s *newsletterService) Unsubscribe(email string) error {
	if err := s.newsletterRepo.UpdateStatus(email, models.SubscriberStatusUnsubscribed); err != nil {
		if errors.Is(err, repositories.ErrSubscriberNotFound) {
			return appErrors.ErrNotFound(err, "subscriber")
		}
		return err
	}
	return nil
}

// MarkBounced помечает адрес недоставляемым по сигналу почтовой системы.
func (s *newsletterService) MarkBounced(email string) error {
	if err := s.newsletterRepo.UpdateStatus(email, models.SubscriberStatusBounced); err != nil {
		if errors.Is(err, repositories.ErrSubscriberNotFound) {
			return appErrors.ErrNotFound(err, "subscriber")
		}
		return err
	}
	return nil
}
