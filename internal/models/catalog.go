package models

import (
	"gorm.io/datatypes"
)

// Course - позиция каталога. Сидится при старте, после этого меняются
// только цена и флаг is_active.
type Course struct {
	BaseModel
	Name          string         `gorm:"type:varchar(255);not null"`
	Description   string         `gorm:"type:text"`
	Price         float64        `gorm:"type:numeric(10,2);not null"`
	OriginalPrice *float64       `gorm:"type:numeric(10,2)"` // для отображения скидки
	Duration      string         `gorm:"type:varchar(100)"`
	Level         CourseLevel    `gorm:"type:varchar(20);not null;check:chk_courses_level,level IN ('beginner','intermediate','advanced','elite')"`
	Features      datatypes.JSON `gorm:"type:jsonb"`
	Outcomes      datatypes.JSON `gorm:"type:jsonb"`
	IsActive      bool           `gorm:"default:true"`
}

// MentorshipProgram - менторская программа с ограничением по местам.
// current_students <= max_students поддерживается условным UPDATE в
// CatalogRepository.EnrollStudent, а не constraint-ом.
type MentorshipProgram struct {
	BaseModel
	Name            string         `gorm:"type:varchar(255);not null"`
	Description     string         `gorm:"type:text"`
	Price           float64        `gorm:"type:numeric(10,2);not null"`
	BillingPeriod   BillingPeriod  `gorm:"type:varchar(20);not null;check:chk_mentorship_billing_period,billing_period IN ('monthly','quarterly','annually')"`
	Features        datatypes.JSON `gorm:"type:jsonb"`
	Benefits        datatypes.JSON `gorm:"type:jsonb"`
	MaxStudents     int            `gorm:"not null"`
	CurrentStudents int            `gorm:"default:0"`
	IsActive        bool           `gorm:"default:true"`
}

func (MentorshipProgram) TableName() string {
	return "mentorship_programs"
}
