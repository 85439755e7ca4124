package services

import (
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/repositories"
)

// ReportingService выставляет три derived view под теми же policy,
// что и их базовые таблицы: строки с данными клиента отдаются только
// владельцу. MonthlyRevenue - агрегат без строк клиентов; он закрыт
// аутентификацией, но не owner-предикатом (админского уровня в схеме нет).
type ReportingService interface {
	ActiveClientEnrollment(caller auth.Identity) ([]dto.EnrollmentRow, error)
	MonthlyRevenue(caller auth.Identity) ([]dto.MonthlyRevenueRow, error)
	UpcomingSessions(caller auth.Identity) ([]dto.UpcomingSessionRow, error)
}

type reportingService struct {
	reportingRepo repositories.ReportingRepository
	now           func() time.Time
}

func NewReportingService(reportingRepo repositories.ReportingRepository) ReportingService {
	return &reportingService{reportingRepo: reportingRepo, now: time.Now}
}

func (s *reportingService) ActiveClientEnrollment(caller auth.Identity) ([]dto.EnrollmentRow, error) {
	// View ходит по clients и payments - обе таблицы owner-scoped
	if err := auth.Authorize(caller, auth.EntityClient, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("enrollment view is readable only for your own row")
	}
	return s.reportingRepo.ActiveClientEnrollment(caller.ClientID)
}

func (s *reportingService) MonthlyRevenue(caller auth.Identity) ([]dto.MonthlyRevenueRow, error) {
	if !caller.IsAuthenticated() {
		return nil, appErrors.AuthorizationDenied("revenue view requires authentication")
	}
	return s.reportingRepo.MonthlyRevenue()
}

func (s *reportingService) UpcomingSessions(caller auth.Identity) ([]dto.UpcomingSessionRow, error) {
	if err := auth.Authorize(caller, auth.EntityBooking, auth.ActionRead,
		auth.RowAttrs{OwnerID: caller.ClientID}); err != nil {
		return nil, appErrors.AuthorizationDenied("sessions view is readable only for your own bookings")
	}
	return s.reportingRepo.UpcomingSessions(s.now(), caller.ClientID)
}
