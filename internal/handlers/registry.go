package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	ClientHandler      *ClientHandler
	CatalogHandler     *CatalogHandler
	BookingHandler     *BookingHandler
	PaymentHandler     *PaymentHandler
	ContactHandler     *ContactHandler
	NewsletterHandler  *NewsletterHandler
	PerformanceHandler *PerformanceHandler
	ReportingHandler   *ReportingHandler
}
