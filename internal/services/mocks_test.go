package services

import (
	"fmt"
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/dto"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"

	"gorm.io/gorm"
)

// Ручные in-memory моки репозиториев. Ключи - id, созданные тестом.
// Нарушения уникальности возвращаются так же, как их возвращает
// настоящий репозиторий - через appErrors.FromDBError.

func duplicateErr(domain string) error {
	return appErrors.UniquenessViolation(gorm.ErrDuplicatedKey, domain, "Duplicate value for unique field")
}

type mockClientRepo struct {
	clients map[string]*models.Client
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[string]*models.Client)}
}

func (m *mockClientRepo) Create(client *models.Client) error {
	if client.ID == "" {
		client.ID = "client-" + client.Email
	}
	for _, existing := range m.clients {
		if existing.Email == client.Email {
			return duplicateErr("clients")
		}
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepo) FindByID(id string) (*models.Client, error) {
	client, ok := m.clients[id]
	if !ok {
		return nil, repositories.ErrClientNotFound
	}
	return client, nil
}

func (m *mockClientRepo) FindByEmail(email string) (*models.Client, error) {
	for _, client := range m.clients {
		if client.Email == email {
			return client, nil
		}
	}
	return nil, repositories.ErrClientNotFound
}

func (m *mockClientRepo) Update(client *models.Client) error {
	if _, ok := m.clients[client.ID]; !ok {
		return repositories.ErrClientNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepo) UpdateStatus(clientID string, status models.ClientStatus) error {
	client, ok := m.clients[clientID]
	if !ok {
		return repositories.ErrClientNotFound
	}
	client.Status = status
	return nil
}

func (m *mockClientRepo) UpdatePaymentStatus(clientID string, status models.ClientPaymentStatus) error {
	client, ok := m.clients[clientID]
	if !ok {
		return repositories.ErrClientNotFound
	}
	client.PaymentStatus = status
	return nil
}

func (m *mockClientRepo) UpdateLastLogin(clientID string, at time.Time) error {
	client, ok := m.clients[clientID]
	if !ok {
		return repositories.ErrClientNotFound
	}
	client.LastLogin = &at
	return nil
}

func (m *mockClientRepo) Delete(clientID string) error {
	if _, ok := m.clients[clientID]; !ok {
		return repositories.ErrClientNotFound
	}
	delete(m.clients, clientID)
	return nil
}

func (m *mockClientRepo) CountAll() (int64, error) {
	return int64(len(m.clients)), nil
}

type mockCatalogRepo struct {
	courses  map[string]*models.Course
	programs map[string]*models.MentorshipProgram
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		courses:  make(map[string]*models.Course),
		programs: make(map[string]*models.MentorshipProgram),
	}
}

func (m *mockCatalogRepo) FindActiveCourses() ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.courses {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCatalogRepo) FindCourseByID(id string) (*models.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, repositories.ErrCourseNotFound
	}
	return course, nil
}

func (m *mockCatalogRepo) UpdateCoursePrice(id string, price float64, originalPrice *float64) error {
	course, ok := m.courses[id]
	if !ok {
		return repositories.ErrCourseNotFound
	}
	course.Price = price
	course.OriginalPrice = originalPrice
	return nil
}

func (m *mockCatalogRepo) SetCourseActive(id string, active bool) error {
	course, ok := m.courses[id]
	if !ok {
		return repositories.ErrCourseNotFound
	}
	course.IsActive = active
	return nil
}

func (m *mockCatalogRepo) FindActiveMentorships() ([]models.MentorshipProgram, error) {
	var out []models.MentorshipProgram
	for _, p := range m.programs {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockCatalogRepo) FindMentorshipByID(id string) (*models.MentorshipProgram, error) {
	program, ok := m.programs[id]
	if !ok {
		return nil, repositories.ErrMentorshipNotFound
	}
	return program, nil
}

func (m *mockCatalogRepo) EnrollStudent(programID string) error {
	program, ok := m.programs[programID]
	if !ok {
		return repositories.ErrMentorshipNotFound
	}
	if !program.IsActive || program.CurrentStudents >= program.MaxStudents {
		if !program.IsActive {
			return repositories.ErrMentorshipNotFound
		}
		return repositories.ErrProgramFull
	}
	program.CurrentStudents++
	return nil
}

func (m *mockCatalogRepo) WithdrawStudent(programID string) error {
	program, ok := m.programs[programID]
	if !ok {
		return repositories.ErrMentorshipNotFound
	}
	if program.CurrentStudents > 0 {
		program.CurrentStudents--
	}
	return nil
}

type mockBookingRepo struct {
	bookings map[string]*models.Booking
	nextID   int
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (m *mockBookingRepo) Create(booking *models.Booking) error {
	m.nextID++
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("booking-%d", m.nextID)
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepo) FindByID(id string) (*models.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repositories.ErrBookingNotFound
	}
	return booking, nil
}

func (m *mockBookingRepo) FindByClient(clientID string, limit, offset int) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	booking, ok := m.bookings[id]
	if !ok {
		return repositories.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func (m *mockBookingRepo) Update(booking *models.Booking) error {
	if _, ok := m.bookings[booking.ID]; !ok {
		return repositories.ErrBookingNotFound
	}
	m.bookings[booking.ID] = booking
	return nil
}

type mockPaymentRepo struct {
	payments map[string]*models.Payment
	nextID   int
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[string]*models.Payment)}
}

func (m *mockPaymentRepo) Create(payment *models.Payment) error {
	for _, existing := range m.payments {
		if existing.TransactionID == payment.TransactionID {
			return duplicateErr("payments")
		}
	}
	m.nextID++
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("payment-%d", m.nextID)
	}
	m.payments[payment.ID] = payment
	return nil
}

func (m *mockPaymentRepo) FindByID(id string) (*models.Payment, error) {
	payment, ok := m.payments[id]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	return payment, nil
}

func (m *mockPaymentRepo) FindByTransactionID(txID string) (*models.Payment, error) {
	for _, p := range m.payments {
		if p.TransactionID == txID {
			return p, nil
		}
	}
	return nil, repositories.ErrPaymentNotFound
}

func (m *mockPaymentRepo) FindByClient(clientID string, limit, offset int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) UpdateStatus(id string, status models.PaymentStatus) error {
	payment, ok := m.payments[id]
	if !ok {
		return repositories.ErrPaymentNotFound
	}
	payment.Status = status
	return nil
}

func (m *mockPaymentRepo) MarkRefunded(id string, amount float64, reason string, at time.Time) error {
	payment, ok := m.payments[id]
	if !ok {
		return repositories.ErrPaymentNotFound
	}
	payment.Status = models.PaymentStatusRefunded
	payment.RefundAmount = amount
	payment.RefundReason = reason
	payment.RefundDate = &at
	return nil
}

type mockPerformanceRepo struct {
	records map[string]*models.TradingPerformance
	nextID  int
}

func newMockPerformanceRepo() *mockPerformanceRepo {
	return &mockPerformanceRepo{records: make(map[string]*models.TradingPerformance)}
}

func (m *mockPerformanceRepo) Create(record *models.TradingPerformance) error {
	record.Month = models.MonthKey(record.Month)
	for _, existing := range m.records {
		if existing.ClientID == record.ClientID && existing.Month.Equal(record.Month) {
			return duplicateErr("trading_performance")
		}
	}
	m.nextID++
	if record.ID == "" {
		record.ID = fmt.Sprintf("perf-%d", m.nextID)
	}
	m.records[record.ID] = record
	return nil
}

func (m *mockPerformanceRepo) FindByID(id string) (*models.TradingPerformance, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, repositories.ErrPerformanceNotFound
	}
	return record, nil
}

func (m *mockPerformanceRepo) FindByClient(clientID string) ([]models.TradingPerformance, error) {
	var out []models.TradingPerformance
	for _, r := range m.records {
		if r.ClientID == clientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockPerformanceRepo) FindByClientMonth(clientID string, month time.Time) (*models.TradingPerformance, error) {
	key := models.MonthKey(month)
	for _, r := range m.records {
		if r.ClientID == clientID && r.Month.Equal(key) {
			return r, nil
		}
	}
	return nil, repositories.ErrPerformanceNotFound
}

func (m *mockPerformanceRepo) Update(record *models.TradingPerformance) error {
	if _, ok := m.records[record.ID]; !ok {
		return repositories.ErrPerformanceNotFound
	}
	m.records[record.ID] = record
	return nil
}

type mockSessionRepo struct {
	sessions map[string]*models.UserSession
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*models.UserSession)}
}

func (m *mockSessionRepo) Create(session *models.UserSession) error {
	if _, ok := m.sessions[session.SessionToken]; ok {
		return duplicateErr("user_sessions")
	}
	if session.ID == "" {
		session.ID = "session-" + session.SessionToken
	}
	m.sessions[session.SessionToken] = session
	return nil
}

func (m *mockSessionRepo) FindByToken(token string) (*models.UserSession, error) {
	session, ok := m.sessions[token]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockSessionRepo) FindActiveByClient(clientID string) ([]models.UserSession, error) {
	var out []models.UserSession
	for _, s := range m.sessions {
		if s.ClientID == clientID && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) TouchActivity(token string, at time.Time) error {
	session, ok := m.sessions[token]
	if !ok {
		return repositories.ErrSessionNotFound
	}
	session.LastActivity = at
	return nil
}

func (m *mockSessionRepo) Deactivate(token string) error {
	session, ok := m.sessions[token]
	if !ok {
		return repositories.ErrSessionNotFound
	}
	session.IsActive = false
	return nil
}

func (m *mockSessionRepo) DeactivateAllForClient(clientID string) error {
	for _, s := range m.sessions {
		if s.ClientID == clientID {
			s.IsActive = false
		}
	}
	return nil
}

type mockReportingRepo struct {
	enrollment []dto.EnrollmentRow
	revenue    []dto.MonthlyRevenueRow
	sessions   []dto.UpcomingSessionRow

	lastEnrollmentClientID string
	lastSessionsClientID   string
	lastSessionsNow        time.Time
}

func (m *mockReportingRepo) ActiveClientEnrollment(clientID string) ([]dto.EnrollmentRow, error) {
	m.lastEnrollmentClientID = clientID
	return m.enrollment, nil
}

func (m *mockReportingRepo) MonthlyRevenue() ([]dto.MonthlyRevenueRow, error) {
	return m.revenue, nil
}

func (m *mockReportingRepo) UpcomingSessions(now time.Time, clientID string) ([]dto.UpcomingSessionRow, error) {
	m.lastSessionsNow = now
	m.lastSessionsClientID = clientID
	return m.sessions, nil
}
