package services

import (
	"errors"
	"net/http"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/logger"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"
)

type PaymentService interface {
	// Record фиксирует платеж из шлюза. Сама обработка платежей вне
	// зоны ответственности - сюда приходит уже случившийся факт.
	Record(req *dto.RecordPaymentRequest) (*models.Payment, error)
	Get(caller auth.Identity, id string) (*models.Payment, error)
	ListOwn(caller auth.Identity, limit, offset int) ([]models.Payment, error)
	Refund(paymentID string, amount float64, reason string) error
	SetStatus(paymentID string, status models.PaymentStatus) error
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	clientRepo  repositories.ClientRepository
	catalogRepo repositories.CatalogRepository
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	clientRepo repositories.ClientRepository,
	catalogRepo repositories.CatalogRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		catalogRepo: catalogRepo,
	}
}

// resolveItemRef валидирует полиморфную ссылку платежа против каталога.
// FK на item_id не объявлен (пробел исходной схемы), поэтому
// существование строки каталога проверяется здесь, до записи.
func (s *paymentService) resolveItemRef(ref models.PaymentItemRef) error {
	if err := ref.Validate(); err != nil {
		return appErrors.DomainViolation("payments", err.Error())
	}
	if !ref.NeedsCatalogLookup() {
		return nil // консультации не резолвятся в каталог
	}

	switch ref.Type {
	case models.PaymentTypeCourse:
		if _, err := s.catalogRepo.FindCourseByID(ref.ID); err != nil {
			if errors.Is(err, repositories.ErrCourseNotFound) {
				return appErrors.New(appErrors.CodeInvalidItemRef, "payments",
					"payment references a nonexistent course", http.StatusBadRequest)
			}
			return err
		}
	case models.PaymentTypeMentorship:
		if _, err := s.catalogRepo.FindMentorshipByID(ref.ID); err != nil {
			if errors.Is(err, repositories.ErrMentorshipNotFound) {
				return appErrors.New(appErrors.CodeInvalidItemRef, "payments",
					"payment references a nonexistent mentorship program", http.StatusBadRequest)
			}
			return err
		}
	}
	return nil
}

func (s *paymentService) Record(req *dto.RecordPaymentRequest) (*models.Payment, error) {
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, appErrors.ReferentialViolation(err, "payments", "payment references a nonexistent client")
		}
		return nil, err
	}

	paymentType := models.PaymentType(req.PaymentType)
	ref := models.PaymentItemRef{Type: paymentType, ID: req.ItemID}
	if err := s.resolveItemRef(ref); err != nil {
		return nil, err
	}

	status := models.PaymentStatusPending
	if req.Status != "" {
		status = models.PaymentStatus(req.Status)
		if !status.Valid() {
			return nil, appErrors.DomainViolation("payments", "invalid payment status "+req.Status)
		}
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if req.PaymentMethod != "" && !method.Valid() {
		return nil, appErrors.DomainViolation("payments", "invalid payment method "+req.PaymentMethod)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	payment := &models.Payment{
		ClientID:        req.ClientID,
		Amount:          req.Amount,
		Currency:        currency,
		TransactionID:   req.TransactionID,
		PaymentIntentID: req.PaymentIntentID,
		PaymentMethod:   method,
		PaymentType:     paymentType,
		Status:          status,
		PaymentDate:     time.Now(),
	}
	if ref.NeedsCatalogLookup() {
		itemID := ref.ID
		payment.ItemID = &itemID
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	// Завершенный платеж двигает биллинговый статус клиента и,
	// для менторства, занимает место в программе.
	if status == models.PaymentStatusCompleted {
		if err := s.clientRepo.UpdatePaymentStatus(req.ClientID, models.ClientPaymentCompleted); err != nil {
			logger.Warn("failed to advance client payment status",
				"client_id", req.ClientID, "error", err)
		}
	}

	return payment, nil
}

func (s *paymentService) Get(caller auth.Identity, id string) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, appErrors.ErrNotFound(err, "payment")
		}
		return nil, err
	}

	if err := auth.Authorize(caller, auth.EntityPayment, auth.ActionRead,
		auth.RowAttrs{OwnerID: payment.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("payments are readable only by their owner")
	}
	return payment, nil
}

func (s *paymentService) ListOwn(caller auth.Identity, limit, offset int) ([]models.Payment, error) {
	if err := auth.Authorize(caller, auth.EntityPayment, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("payments are readable only by their owner")
	}
	return s.paymentRepo.FindByClient(caller.ClientID, limit, offset)
}

// Refund помечает платеж возвращенным. Сам возврат денег делает шлюз.
func (s *paymentService) Refund(paymentID string, amount float64, reason string) error {
	payment, err := s.paymentRepo.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return appErrors.ErrNotFound(err, "payment")
		}
		return err
	}

	if payment.Status != models.PaymentStatusCompleted && payment.Status != models.PaymentStatusDisputed {
		return appErrors.New(appErrors.CodeInvalidOperation, "payments",
			"only completed or disputed payments can be refunded", http.StatusBadRequest)
	}

	return s.paymentRepo.MarkRefunded(paymentID, amount, reason, time.Now())
}

func (s *paymentService) SetStatus(paymentID string, status models.PaymentStatus) error {
	if !status.Valid() {
		return appErrors.DomainViolation("payments", "invalid payment status "+string(status))
	}
	if err := s.paymentRepo.UpdateStatus(paymentID, status); err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return appErrors.ErrNotFound(err, "payment")
		}
		return err
	}
	return nil
}
