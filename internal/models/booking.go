package models

import "time"

// Booking - запись клиента на сессию (созвон, разбор стратегии и т.д.)
type Booking struct {
	BaseModel
	ClientID        string        `gorm:"type:uuid;not null;index"`
	SessionDate     time.Time     `gorm:"not null;index"`
	SessionType     SessionType   `gorm:"type:varchar(30);not null;check:chk_bookings_session_type,session_type IN ('one_on_one','group','strategy_review','consultation')"`
	DurationMinutes int           `gorm:"default:60"`
	Status          BookingStatus `gorm:"type:varchar(20);default:'scheduled';check:chk_bookings_status,status IN ('scheduled','completed','cancelled','no_show')"`
	MeetingLink     string        `gorm:"type:varchar(500)"`
	Notes           string        `gorm:"type:text"`

	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
