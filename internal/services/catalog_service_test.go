package services

import (
	"testing"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/auth"
	"tradelab_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*mockCatalogRepo, *mockClientRepo, CatalogService) {
	catalogRepo := newMockCatalogRepo()
	clientRepo := newMockClientRepo()
	return catalogRepo, clientRepo, NewCatalogService(catalogRepo, clientRepo)
}

func TestCatalogService_ListCoursesFiltersInactive(t *testing.T) {
	catalogRepo, _, svc := newCatalogFixture()
	catalogRepo.courses["c1"] = &models.Course{Name: "Forex Foundations", Price: 497, Level: models.CourseLevelBeginner, IsActive: true}
	catalogRepo.courses["c1"].ID = "c1"
	catalogRepo.courses["c2"] = &models.Course{Name: "Retired Course", Price: 100, Level: models.CourseLevelBeginner, IsActive: false}
	catalogRepo.courses["c2"].ID = "c2"

	courses, err := svc.ListCourses(auth.Anonymous())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Forex Foundations", courses[0].Name)
}

func TestCatalogService_GetInactiveCourseLooksAbsent(t *testing.T) {
	catalogRepo, _, svc := newCatalogFixture()
	catalogRepo.courses["c2"] = &models.Course{Name: "Retired Course", IsActive: false}
	catalogRepo.courses["c2"].ID = "c2"

	// Неактивная строка каталога для читателя не существует: 404, не 403
	_, err := svc.GetCourse(auth.Anonymous(), "c2")
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)

	_, err = svc.GetCourse(auth.Authenticated("client-1"), "c2")
	require.Error(t, err)
}

func TestCatalogService_EnrollUntilFull(t *testing.T) {
	catalogRepo, clientRepo, svc := newCatalogFixture()

	client := &models.Client{Name: "Student", Email: "student@test.com"}
	require.NoError(t, clientRepo.Create(client))

	program := &models.MentorshipProgram{
		Name:        "Private Desk",
		MaxStudents: 2,
		IsActive:    true,
	}
	program.ID = "m1"
	catalogRepo.programs["m1"] = program

	require.NoError(t, svc.Enroll(client.ID, "m1"))
	require.NoError(t, svc.Enroll(client.ID, "m1"))
	assert.Equal(t, 2, program.CurrentStudents)

	// Третье место не существует
	err := svc.Enroll(client.ID, "m1")
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeProgramFull, appErr.Code)
	assert.Equal(t, 2, program.CurrentStudents)
}

func TestCatalogService_EnrollUnknownClient(t *testing.T) {
	catalogRepo, _, svc := newCatalogFixture()
	program := &models.MentorshipProgram{Name: "Inner Circle", MaxStudents: 20, IsActive: true}
	program.ID = "m1"
	catalogRepo.programs["m1"] = program

	err := svc.Enroll("no-such-client", "m1")
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)
	assert.Equal(t, 0, program.CurrentStudents)
}

func TestCatalogService_WithdrawFreesSeat(t *testing.T) {
	catalogRepo, clientRepo, svc := newCatalogFixture()
	client := &models.Client{Name: "Student", Email: "student@test.com"}
	require.NoError(t, clientRepo.Create(client))

	program := &models.MentorshipProgram{Name: "Momentum Circle", MaxStudents: 1, IsActive: true}
	program.ID = "m1"
	catalogRepo.programs["m1"] = program

	require.NoError(t, svc.Enroll(client.ID, "m1"))
	require.Error(t, svc.Enroll(client.ID, "m1"))

	require.NoError(t, svc.Withdraw(client.ID, "m1"))
	require.NoError(t, svc.Enroll(client.ID, "m1"))
}
