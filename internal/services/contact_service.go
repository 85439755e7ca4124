package services

import (
	"errors"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"
)

type ContactService interface {
	Submit(caller auth.Identity, req *dto.ContactRequest) (*models.ContactSubmission, error)
	Advance(id string, status models.ContactStatus, followUp *time.Time) error
	ListByStatus(status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Submit принимает заявку от кого угодно - единственная операция,
// разрешенная анониму помимо чтения каталога и подписки.
func (s *contactService) Submit(caller auth.Identity, req *dto.ContactRequest) (*models.ContactSubmission, error) {
	if err := auth.Authorize(caller, auth.EntityContact, auth.ActionCreate, auth.RowAttrs{}); err != nil {
		return nil, appErrors.AuthorizationDenied("contact submission denied")
	}

	submission := &models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}
	if err := s.contactRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Advance двигает лид по воронке new -> contacted -> converted/closed.
// Вызывается обслуживающими процессами, в HTTP не выставлен.
func (s *contactService) Advance(id string, status models.ContactStatus, followUp *time.Time) error {
	if !status.Valid() {
		return appErrors.DomainViolation("contact_submissions", "invalid contact status "+string(status))
	}
	if err := s.contactRepo.UpdateStatus(id, status, followUp); err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			return appErrors.ErrNotFound(err, "contact submission")
		}
		return err
	}
	return nil
}

func (s *contactService) ListByStatus(status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, error) {
	if !status.Valid() {
		return nil, appErrors.DomainViolation("contact_submissions", "invalid contact status "+string(status))
	}
	return s.contactRepo.FindByStatus(status, limit, offset)
}
