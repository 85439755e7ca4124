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

type ClientService interface {
	Register(req *dto.CreateClientRequest) (*models.Client, error)
	GetSelf(caller auth.Identity) (*models.Client, error)
	UpdateSelf(caller auth.Identity, req *dto.UpdateClientRequest) (*models.Client, error)
	SetStatus(clientID string, status models.ClientStatus) error
	SetPaymentStatus(clientID string, status models.ClientPaymentStatus) error
	RecordLogin(clientID string, at time.Time) error
}

type clientService struct {
	clientRepo repositories.ClientRepository
}

func NewClientService(clientRepo repositories.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

// Register заводит запись клиента для identity, выданной внешним
// провайдером. Email уникален - дубликат вернет UniquenessViolation.
func (s *clientService) Register(req *dto.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SelectedPackage: req.SelectedPackage,
		PaymentStatus:   models.ClientPaymentPending,
		Status:          models.ClientStatusActive,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetSelf читает собственную запись. Policy: клиент видит только себя.
func (s *clientService) GetSelf(caller auth.Identity) (*models.Client, error) {
	if err := auth.Authorize(caller, auth.EntityClient, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("clients are readable only by their owner")
	}

	client, err := s.clientRepo.FindByID(caller.ClientID)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, appErrors.ErrNotFound(err, "client")
		}
		return nil, err
	}
	return client, nil
}

// UpdateSelf меняет собственную запись. Статусные поля отсюда
// недоступны - ими управляют модерация и биллинг.
func (s *clientService) UpdateSelf(caller auth.Identity, req *dto.UpdateClientRequest) (*models.Client, error) {
	if err := auth.Authorize(caller, auth.EntityClient, auth.ActionUpdate,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("clients are updatable only by their owner")
	}

	client, err := s.clientRepo.FindByID(caller.ClientID)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, appErrors.ErrNotFound(err, "client")
		}
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.SelectedPackage != nil {
		client.SelectedPackage = *req.SelectedPackage
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// SetStatus - модерация аккаунта. Клиенты не удаляются жестко,
// их lifecycle - это active/inactive/suspended.
func (s *clientService) SetStatus(clientID string, status models.ClientStatus) error {
	if !status.Valid() {
		return appErrors.DomainViolation("clients", "invalid client status "+string(status))
	}
	if err := s.clientRepo.UpdateStatus(clientID, status); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return appErrors.ErrNotFound(err, "client")
		}
		return err
	}
	return nil
}

// SetPaymentStatus вызывается биллинговыми событиями.
func (s *clientService) SetPaymentStatus(clientID string, status models.ClientPaymentStatus) error {
	if !status.Valid() {
		return appErrors.DomainViolation("clients", "invalid payment status "+string(status))
	}
	if err := s.clientRepo.UpdatePaymentStatus(clientID, status); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return appErrors.ErrNotFound(err, "client")
		}
		return err
	}
	return nil
}

func (s *clientService) RecordLogin(clientID string, at time.Time) error {
	return s.clientRepo.UpdateLastLogin(clientID, at)
}
