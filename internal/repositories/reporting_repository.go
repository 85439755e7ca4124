package repositories

import (
	"time"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/dto"

	"gorm.io/gorm"
)

// ReportingRepository отдает три derived view. Только чтение:
// view считаются на каждый запрос и нигде не материализуются.
type ReportingRepository interface {
	// ActiveClientEnrollment: активные клиенты + последний завершенный
	// платеж + позиция каталога по типу платежа. clientID != "" сужает
	// выборку до одного клиента (для owner-scoped доступа).
	ActiveClientEnrollment(clientID string) ([]dto.EnrollmentRow, error)

	// MonthlyRevenue: завершенные платежи по календарным месяцам,
	// свежий месяц первым.
	MonthlyRevenue() ([]dto.MonthlyRevenueRow, error)

	// UpcomingSessions: запланированные сессии с session_date >= now,
	// по возрастанию даты. clientID != "" сужает до одного клиента.
	UpcomingSessions(now time.Time, clientID string) ([]dto.UpcomingSessionRow, error)
}

type ReportingRepositoryImpl struct {
	db *gorm.DB
}

func NewReportingRepository(db *gorm.DB) ReportingRepository {
	return &ReportingRepositoryImpl{db: db}
}

func (r *ReportingRepositoryImpl) ActiveClientEnrollment(clientID string) ([]dto.EnrollmentRow, error) {
	rows := []dto.EnrollmentRow{}

	query := `
		SELECT c.id          AS client_id,
		       c.name        AS client_name,
		       c.email       AS client_email,
		       p.payment_date,
		       p.amount,
		       p.payment_type,
		       p.item_id,
		       COALESCE(co.name, mp.name) AS item_name
		FROM clients c
		LEFT JOIN LATERAL (
			SELECT payments.payment_date, payments.amount,
			       payments.payment_type, payments.item_id
			FROM payments
			WHERE payments.client_id = c.id AND payments.status = 'completed'
			ORDER BY payments.payment_date DESC
			LIMIT 1
		) p ON true
		LEFT JOIN courses co
		       ON p.payment_type = 'course' AND co.id = p.item_id
		LEFT JOIN mentorship_programs mp
		       ON p.payment_type = 'mentorship' AND mp.id = p.item_id
		WHERE c.status = 'active'`

	args := []interface{}{}
	if clientID != "" {
		query += " AND c.id = ?"
		args = append(args, clientID)
	}
	query += " ORDER BY c.created_at DESC"

	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, appErrors.FromDBError(err, "reporting")
	}
	return rows, nil
}

func (r *ReportingRepositoryImpl) MonthlyRevenue() ([]dto.MonthlyRevenueRow, error) {
	rows := []dto.MonthlyRevenueRow{}

	query := `
		SELECT date_trunc('month', payment_date) AS month,
		       COUNT(*)              AS payment_count,
		       COALESCE(SUM(amount), 0) AS total_revenue,
		       COALESCE(AVG(amount), 0) AS average_amount
		FROM payments
		WHERE status = 'completed'
		GROUP BY date_trunc('month', payment_date)
		ORDER BY month DESC`

	if err := r.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, appErrors.FromDBError(err, "reporting")
	}
	return rows, nil
}

func (r *ReportingRepositoryImpl) UpcomingSessions(now time.Time, clientID string) ([]dto.UpcomingSessionRow, error) {
	rows := []dto.UpcomingSessionRow{}

	query := `
		SELECT b.id            AS booking_id,
		       b.client_id,
		       c.name          AS client_name,
		       c.email         AS client_email,
		       c.phone         AS client_phone,
		       b.session_date,
		       b.session_type,
		       b.duration_minutes,
		       b.meeting_link
		FROM bookings b
		JOIN clients c ON c.id = b.client_id
		WHERE b.status = 'scheduled' AND b.session_date >= ?`

	args := []interface{}{now}
	if clientID != "" {
		query += " AND b.client_id = ?"
		args = append(args, clientID)
	}
	query += " ORDER BY b.session_date ASC"

	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, appErrors.FromDBError(err, "reporting")
	}
	return rows, nil
}
