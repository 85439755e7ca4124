package repositories

import (
	"errors"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrMentorshipNotFound = errors.New("mentorship program not found")
	ErrProgramFull        = errors.New("mentorship program is full")
)

type CatalogRepository interface {
	// Courses
	FindActiveCourses() ([]models.Course, error)
	FindCourseByID(id string) (*models.Course, error)
	UpdateCoursePrice(id string, price float64, originalPrice *float64) error
	SetCourseActive(id string, active bool) error

	// Mentorship programs
	FindActiveMentorships() ([]models.MentorshipProgram, error)
	FindMentorshipByID(id string) (*models.MentorshipProgram, error)
	EnrollStudent(programID string) error
	WithdrawStudent(programID string) error
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

// Courses

func (r *CatalogRepositoryImpl) FindActiveCourses() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&courses).Error
	if err != nil {
		return nil, appErrors.FromDBError(err, "courses")
	}
	return courses, nil
}

func (r *CatalogRepositoryImpl) FindCourseByID(id string) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, appErrors.FromDBError(err, "courses")
	}
	return &course, nil
}

func (r *CatalogRepositoryImpl) UpdateCoursePrice(id string, price float64, originalPrice *float64) error {
	res := r.db.Model(&models.Course{}).Where("id = ?", id).
		Updates(map[string]interface{}{"price": price, "original_price": originalPrice})
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "courses")
	}
	if res.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) SetCourseActive(id string, active bool) error {
	res := r.db.Model(&models.Course{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "courses")
	}
	if res.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// Mentorship programs

func (r *CatalogRepositoryImpl) FindActiveMentorships() ([]models.MentorshipProgram, error) {
	var programs []models.MentorshipProgram
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&programs).Error
	if err != nil {
		return nil, appErrors.FromDBError(err, "mentorship_programs")
	}
	return programs, nil
}

func (r *CatalogRepositoryImpl) FindMentorshipByID(id string) (*models.MentorshipProgram, error) {
	var program models.MentorshipProgram
	err := r.db.First(&program, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorshipNotFound
		}
		return nil, appErrors.FromDBError(err, "mentorship_programs")
	}
	return &program, nil
}

// EnrollStudent занимает место в программе одним условным UPDATE:
// инкремент проходит только пока current_students < max_students.
// Read-then-write здесь нельзя - под конкурентной записью он
// переполняет программу.
func (r *CatalogRepositoryImpl) EnrollStudent(programID string) error {
	res := r.db.Model(&models.MentorshipProgram{}).
		Where("id = ? AND is_active = ? AND current_students < max_students", programID, true).
		Update("current_students", gorm.Expr("current_students + 1"))
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "mentorship_programs")
	}
	if res.RowsAffected == 0 {
		// Либо программы нет/неактивна, либо мест не осталось
		if _, err := r.FindMentorshipByID(programID); err != nil {
			return err
		}
		return ErrProgramFull
	}
	return nil
}

// WithdrawStudent освобождает место; счетчик не уходит ниже нуля.
func (r *CatalogRepositoryImpl) WithdrawStudent(programID string) error {
	res := r.db.Model(&models.MentorshipProgram{}).
		Where("id = ? AND current_students > 0", programID).
		Update("current_students", gorm.Expr("current_students - 1"))
	if res.Error != nil {
		return appErrors.FromDBError(res.Error, "mentorship_programs")
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindMentorshipByID(programID); err != nil {
			return err
		}
	}
	return nil
}
