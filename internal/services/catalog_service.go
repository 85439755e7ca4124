package services

import (
	"errors"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/logger"
	"tradelab_backend/internal/models"
	"tradelab_backend/internal/repositories"
)

type CatalogService interface {
	ListCourses(caller auth.Identity) ([]models.Course, error)
	GetCourse(caller auth.Identity, id string) (*models.Course, error)
	ListMentorships(caller auth.Identity) ([]models.MentorshipProgram, error)
	GetMentorship(caller auth.Identity, id string) (*models.MentorshipProgram, error)
	Enroll(clientID, programID string) error
	Withdraw(clientID, programID string) error
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
	clientRepo  repositories.ClientRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, clientRepo repositories.ClientRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, clientRepo: clientRepo}
}

// ListCourses - публичный каталог, policy пропускает только is_active.
// Репозиторий и так выбирает активные; Authorize фиксирует правило явно.
func (s *catalogService) ListCourses(caller auth.Identity) ([]models.Course, error) {
	if err := auth.Authorize(caller, auth.EntityCourse, auth.ActionRead,
		auth.RowAttrs{IsActive: true}); err != nil {
		return nil, appErrors.AuthorizationDenied("course catalog read denied")
	}
	return s.catalogRepo.FindActiveCourses()
}

func (s *catalogService) GetCourse(caller auth.Identity, id string) (*models.Course, error) {
	course, err := s.catalogRepo.FindCourseByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, appErrors.ErrNotFound(err, "course")
		}
		return nil, err
	}
	if err := auth.Authorize(caller, auth.EntityCourse, auth.ActionRead,
		auth.RowAttrs{IsActive: course.IsActive}); err != nil {
		// Неактивные строки каталога для читателей не существуют
		return nil, appErrors.ErrNotFound(auth.ErrDenied, "course")
	}
	return course, nil
}

func (s *catalogService) ListMentorships(caller auth.Identity) ([]models.MentorshipProgram, error) {
	if err := auth.Authorize(caller, auth.EntityMentorship, auth.ActionRead,
		auth.RowAttrs{IsActive: true}); err != nil {
		return nil, appErrors.AuthorizationDenied("mentorship catalog read denied")
	}
	return s.catalogRepo.FindActiveMentorships()
}

func (s *catalogService) GetMentorship(caller auth.Identity, id string) (*models.MentorshipProgram, error) {
	program, err := s.catalogRepo.FindMentorshipByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMentorshipNotFound) {
			return nil, appErrors.ErrNotFound(err, "mentorship program")
		}
		return nil, err
	}
	if err := auth.Authorize(caller, auth.EntityMentorship, auth.ActionRead,
		auth.RowAttrs{IsActive: program.IsActive}); err != nil {
		return nil, appErrors.ErrNotFound(auth.ErrDenied, "mentorship program")
	}
	return program, nil
}

// Enroll занимает место в программе после подтвержденной оплаты менторства.
// Репозиторий делает условный инкремент: заполненная программа вернет
// ErrProgramFull, а не уйдет за max_students.
func (s *catalogService) Enroll(clientID, programID string) error {
	if _, err := s.clientRepo.FindByID(clientID); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return appErrors.ErrNotFound(err, "client")
		}
		return err
	}

	if err := s.catalogRepo.EnrollStudent(programID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProgramFull):
			return appErrors.ErrProgramFull
		case errors.Is(err, repositories.ErrMentorshipNotFound):
			return appErrors.ErrNotFound(err, "mentorship program")
		}
		return err
	}

	logger.Info("client enrolled in mentorship", "client_id", clientID, "program_id", programID)
	return nil
}

func (s *catalogService) Withdraw(clientID, programID string) error {
	if err := s.catalogRepo.WithdrawStudent(programID); err != nil {
		if errors.Is(err, repositories.ErrMentorshipNotFound) {
			return appErrors.ErrNotFound(err, "mentorship program")
		}
		return err
	}
	logger.Info("client withdrawn from mentorship", "client_id", clientID, "program_id", programID)
	return nil
}
