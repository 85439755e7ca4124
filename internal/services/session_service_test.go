package services

import (
	"testing"

	"tradelab_backend/internal/appErrors"
	"tradelab_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (*mockSessionRepo, *mockClientRepo, SessionService, *models.Client) {
	sessionRepo := newMockSessionRepo()
	clientRepo := newMockClientRepo()
	client := &models.Client{Name: "Session Owner", Email: "session@test.com"}
	require.NoError(t, clientRepo.Create(client))
	return sessionRepo, clientRepo, NewSessionService(sessionRepo, clientRepo), client
}

func TestSessionService_RecordLoginMirrorsLastLogin(t *testing.T) {
	_, clientRepo, svc, client := newSessionFixture(t)

	session, err := svc.RecordLogin(client.ID, "tok-1", "10.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.True(t, session.IsActive)
	assert.Equal(t, client.ID, session.ClientID)

	// last_login клиента двигается вместе с сессией
	stored, _ := clientRepo.FindByID(client.ID)
	require.NotNil(t, stored.LastLogin)
	assert.Equal(t, session.LoginAt, *stored.LastLogin)
}

func TestSessionService_DuplicateToken(t *testing.T) {
	_, _, svc, client := newSessionFixture(t)

	_, err := svc.RecordLogin(client.ID, "tok-1", "", "")
	require.NoError(t, err)

	_, err = svc.RecordLogin(client.ID, "tok-1", "", "")
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeUniquenessViolation, appErr.Code)
}

func TestSessionService_LogoutFlow(t *testing.T) {
	sessionRepo, _, svc, client := newSessionFixture(t)

	_, err := svc.RecordLogin(client.ID, "tok-1", "", "")
	require.NoError(t, err)
	_, err = svc.RecordLogin(client.ID, "tok-2", "", "")
	require.NoError(t, err)

	active, err := svc.ListActive(client.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, svc.Logout("tok-1"))
	session, _ := sessionRepo.FindByToken("tok-1")
	assert.False(t, session.IsActive)

	require.NoError(t, svc.LogoutAll(client.ID))
	active, err = svc.ListActive(client.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Логаут несуществующего токена - 404
	err = svc.Logout("tok-unknown")
	require.Error(t, err)
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)
}
