package models

import (
	"fmt"
	"time"
)

// Payment - платеж клиента за курс, менторство или консультацию.
// ItemID - слабая ссылка: интерпретируется по PaymentType, FK не объявлен
// (известный пробел целостности исходной схемы). Валидация выполняется
// в PaymentService через PaymentItemRef.
type Payment struct {
	BaseModel
	ClientID        string        `gorm:"type:uuid;not null;index"`
	Amount          float64       `gorm:"type:numeric(10,2);not null"`
	Currency        string        `gorm:"type:varchar(3);default:'USD'"`
	TransactionID   string        `gorm:"uniqueIndex;not null"` // id во внешнем шлюзе
	PaymentIntentID string        `gorm:"type:varchar(255)"`
	PaymentMethod   PaymentMethod `gorm:"type:varchar(20);check:chk_payments_method,payment_method IN ('card','bank_transfer','paypal','crypto')"`
	PaymentType     PaymentType   `gorm:"type:varchar(20);not null;check:chk_payments_type,payment_type IN ('course','mentorship','consultation')"`
	ItemID          *string       `gorm:"type:uuid"`
	Status          PaymentStatus `gorm:"type:varchar(20);default:'pending';check:chk_payments_status,status IN ('pending','completed','failed','refunded','disputed')"`
	PaymentDate     time.Time     `gorm:"default:now();index"`
	RefundAmount    float64       `gorm:"type:numeric(10,2);default:0"`
	RefundDate      *time.Time
	RefundReason    string `gorm:"type:text"`

	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// PaymentItemRef - tagged union для полиморфной ссылки платежа.
// Type выбирает каталог, ID - строку в нем. Для консультаций каталога нет
// и ID остается пустым.
type PaymentItemRef struct {
	Type PaymentType
	ID   string
}

// NeedsCatalogLookup сообщает, должна ли ссылка резолвиться в каталог.
func (r PaymentItemRef) NeedsCatalogLookup() bool {
	return r.Type == PaymentTypeCourse || r.Type == PaymentTypeMentorship
}

// Validate проверяет форму ссылки (существование строки каталога
// проверяет PaymentService).
func (r PaymentItemRef) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("invalid payment type %q", r.Type)
	}
	if r.NeedsCatalogLookup() && r.ID == "" {
		return fmt.Errorf("payment type %q requires an item id", r.Type)
	}
	return nil
}

// ItemRef возвращает полиморфную ссылку платежа.
func (p *Payment) ItemRef() PaymentItemRef {
	ref := PaymentItemRef{Type: p.PaymentType}
	if p.ItemID != nil {
		ref.ID = *p.ItemID
	}
	return ref
}
