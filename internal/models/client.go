package models

import "time"

// Client - зарегистрированный ученик платформы.
// Никогда не удаляется жестко: модерация меняет Status, биллинг - PaymentStatus.
type Client struct {
	BaseModel
	Name            string              `gorm:"type:varchar(255);not null"`
	Email           string              `gorm:"uniqueIndex;not null"`
	Phone           string              `gorm:"type:varchar(50)"`
	SelectedPackage string              `gorm:"type:varchar(255)"`
	PaymentStatus   ClientPaymentStatus `gorm:"type:varchar(20);default:'pending';check:chk_clients_payment_status,payment_status IN ('pending','completed','failed','refunded')"`
	Status          ClientStatus        `gorm:"type:varchar(20);default:'active';check:chk_clients_status,status IN ('active','inactive','suspended')"`
	LastLogin       *time.Time
	Notes           string `gorm:"type:text"`

	// Relations (все дочерние строки умирают вместе с клиентом)
	Bookings           []Booking            `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Payments           []Payment            `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Sessions           []UserSession        `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	PerformanceRecords []TradingPerformance `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
