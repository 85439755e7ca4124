package dto

import "time"

// EnrollmentRow - строка view ActiveClientEnrollment: активный клиент,
// его последний завершенный платеж и позиция каталога, в которую
// резолвится полиморфная ссылка платежа. Платежа может не быть -
// тогда поля платежа/каталога nil.
type EnrollmentRow struct {
	ClientID    string     `json:"client_id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	PaymentType *string    `json:"payment_type,omitempty"`
	ItemID      *string    `json:"item_id,omitempty"`
	ItemName    *string    `json:"item_name,omitempty"`
}

// MonthlyRevenueRow - строка view MonthlyRevenue.
type MonthlyRevenueRow struct {
	Month         time.Time `json:"month"`
	PaymentCount  int64     `json:"payment_count"`
	TotalRevenue  float64   `json:"total_revenue"`
	AverageAmount float64   `json:"average_amount"`
}

// UpcomingSessionRow - строка view UpcomingSessions.
type UpcomingSessionRow struct {
	BookingID       string    `json:"booking_id"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	ClientPhone     string    `json:"client_phone"`
	SessionDate     time.Time `json:"session_date"`
	SessionType     string    `json:"session_type"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingLink     string    `json:"meeting_link,omitempty"`
}
