package services

import (
	"errors"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"
)

type BookingService interface {
	Create(caller auth.Identity, req *dto.CreateBookingRequest) (*models.Booking, error)
	Get(caller auth.Identity, id string) (*models.Booking, error)
	ListOwn(caller auth.Identity, limit, offset int) ([]models.Booking, error)
	SetStatus(id string, status models.BookingStatus) error
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

// Create бронирует сессию для самого вызывающего: policy-предикат
// требует new row's client id == caller identity.
func (s *bookingService) Create(caller auth.Identity, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if err := auth.Authorize(caller, auth.EntityBooking, auth.ActionCreate,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("bookings can be created only for yourself")
	}

	sessionType := models.SessionType(req.SessionType)
	if !sessionType.Valid() {
		return nil, appErrors.DomainViolation("bookings", "invalid session type "+req.SessionType)
	}

	booking := &models.Booking{
		ClientID:        caller.ClientID,
		SessionDate:     req.SessionDate,
		SessionType:     sessionType,
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingStatusScheduled,
		Notes:           req.Notes,
	}
	if booking.DurationMinutes == 0 {
		booking.DurationMinutes = 60
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Get(caller auth.Identity, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, appErrors.ErrNotFound(err, "booking")
		}
		return nil, err
	}

	if err := auth.Authorize(caller, auth.EntityBooking, auth.ActionRead,
		auth.RowAttrs{OwnerID: booking.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("bookings are readable only by their owner")
	}
	return booking, nil
}

func (s *bookingService) ListOwn(caller auth.Identity, limit, offset int) ([]models.Booking, error) {
	if err := auth.Authorize(caller, auth.EntityBooking, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("bookings are readable only by their owner")
	}
	return s.bookingRepo.FindByClient(caller.ClientID, limit, offset)
}

// SetStatus - операционный переход scheduled -> completed/cancelled/no_show.
// Policy-таблица не дает клиентам update на bookings, поэтому метод
// не выставлен в HTTP и вызывается обслуживающими процессами.
func (s *bookingService) SetStatus(id string, status models.BookingStatus) error {
	if !status.Valid() {
		return appErrors.DomainViolation("bookings", "invalid booking status "+string(status))
	}
	if err := s.bookingRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return appErrors.ErrNotFound(err, "booking")
		}
		return err
	}
	return nil
}
