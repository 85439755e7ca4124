package models

import (
	"time"

	"gorm.io/datatypes"
)

// NewsletterSubscriber - подписчик рассылки, не обязательно клиент.
type NewsletterSubscriber struct {
	BaseModel
	Email        string           `gorm:"uniqueIndex;not null"`
	Status       SubscriberStatus `gorm:"type:varchar(20);default:'active';check:chk_newsletter_subscribers_status,status IN ('active','unsubscribed','bounced')"`
	Preferences  datatypes.JSON   `gorm:"type:jsonb"`
	SubscribedAt time.Time        `gorm:"default:now()"`
}
