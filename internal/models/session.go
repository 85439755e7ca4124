package models

import "time"

// UserSession - зеркало сессии, выданной внешним auth-провайдером.
// Хранится для аудита входов.
type UserSession struct {
	BaseModel
	ClientID     string    `gorm:"type:uuid;not null;index"`
	SessionToken string    `gorm:"uniqueIndex;not null"`
	IPAddress    string    `gorm:"type:varchar(45)"` // хватает и для IPv6
	UserAgent    string    `gorm:"type:text"`
	LoginAt      time.Time `gorm:"default:now()"`
	LastActivity time.Time `gorm:"default:now()"`
	IsActive     bool      `gorm:"default:true"`

	Client Client `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
