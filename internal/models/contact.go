package models

import "time"

// ContactSubmission - лид из контактной формы. Не привязан к клиенту.
type ContactSubmission struct {
	BaseModel
	Name         string        `gorm:"type:varchar(255);not null"`
	Email        string        `gorm:"not null"`
	Phone        string        `gorm:"type:varchar(50)"`
	Subject      string        `gorm:"type:varchar(255)"`
	Message      string        `gorm:"type:text;not null"`
	Status       ContactStatus `gorm:"type:varchar(20);default:'new';check:chk_contact_submissions_status,status IN ('new','contacted','converted','closed')"`
	FollowUpDate *time.Time
}
