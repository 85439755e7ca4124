package services

import (
	"tradelab_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer собирает все сервисы в одном месте для wiring в app.
type ServiceContainer struct {
	ClientService      ClientService
	CatalogService     CatalogService
	BookingService     BookingService
	PaymentService     PaymentService
	ContactService     ContactService
	NewsletterService  NewsletterService
	SessionService     SessionService
	PerformanceService PerformanceService
	ReportingService   ReportingService
}

// NewServiceContainer инициализирует репозитории и сервисы поверх одного
// подключения gorm.
func NewServiceContainer(db *gorm.DB) *ServiceContainer {
	clientRepo := repositories.NewClientRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	performanceRepo := repositories.NewPerformanceRepository(db)
	reportingRepo := repositories.NewReportingRepository(db)

	return &ServiceContainer{
		ClientService:      NewClientService(clientRepo),
		CatalogService:     NewCatalogService(catalogRepo, clientRepo),
		BookingService:     NewBookingService(bookingRepo),
		PaymentService:     NewPaymentService(paymentRepo, clientRepo, catalogRepo),
		ContactService:     NewContactService(contactRepo),
		NewsletterService:  NewNewsletterService(newsletterRepo),
		SessionService:     NewSessionService(sessionRepo, clientRepo),
		PerformanceService: NewPerformanceService(performanceRepo, clientRepo),
		ReportingService:   NewReportingService(reportingRepo),
	}
}
