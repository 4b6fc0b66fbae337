package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/client/storage"
	pkgapi "github.com/iudanet/ecoestate/pkg/api"
)

// memAuthStore хранит единственную сессию в памяти
type memAuthStore struct {
	session *storage.AuthData
}

func (m *memAuthStore) SaveAuth(ctx context.Context, data *storage.AuthData) error {
	cp := *data
	m.session = &cp
	return nil
}

func (m *memAuthStore) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if m.session == nil {
		return nil, storage.ErrAuthNotFound
	}
	cp := *m.session
	return &cp, nil
}

func (m *memAuthStore) DeleteAuth(ctx context.Context) error {
	if m.session == nil {
		return storage.ErrAuthNotFound
	}
	m.session = nil
	return nil
}

func newTestService(loginErr error) (*Service, *memAuthStore, *APIMock) {
	store := &memAuthStore{}
	api := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			if loginErr != nil {
				return nil, loginErr
			}
			return &pkgapi.TokenResponse{
				AccessToken: "tok-" + req.Username,
				TokenType:   "Bearer",
				ExpiresIn:   3600,
			}, nil
		},
		SetAccessTokenFunc: func(token string) {},
	}
	return NewService(api, store), store, api
}

func TestLogin_SavesSessionAndSetsToken(t *testing.T) {
	svc, store, api := newTestService(nil)

	session, err := svc.Login(context.Background(), "agent_ivanova", "correct horse battery")
	require.NoError(t, err)

	assert.Equal(t, "agent_ivanova", session.Username)
	assert.Equal(t, "tok-agent_ivanova", session.AccessToken)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())

	require.NotNil(t, store.session)
	assert.Equal(t, session.AccessToken, store.session.AccessToken)

	require.Len(t, api.SetAccessTokenCalls(), 1)
	assert.Equal(t, "tok-agent_ivanova", api.SetAccessTokenCalls()[0].Token)
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	svc, _, api := newTestService(nil)

	_, err := svc.Login(context.Background(), "x", "correct horse battery")
	require.Error(t, err)

	_, err = svc.Login(context.Background(), "agent_ivanova", "short")
	require.Error(t, err)

	assert.Empty(t, api.LoginCalls())
}

func TestLogin_ServerRejection(t *testing.T) {
	svc, store, _ := newTestService(errors.New("401 unauthorized"))

	_, err := svc.Login(context.Background(), "agent_ivanova", "correct horse battery")
	require.Error(t, err)
	assert.Nil(t, store.session)
}

func TestLogout_Idempotent(t *testing.T) {
	svc, store, _ := newTestService(nil)

	_, err := svc.Login(context.Background(), "agent_ivanova", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, store.session)

	// Повторный logout без сессии не ошибка
	require.NoError(t, svc.Logout(context.Background()))
}

func TestIsAuthenticated(t *testing.T) {
	svc, store, _ := newTestService(nil)

	ok, err := svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Login(context.Background(), "agent_ivanova", "correct horse battery")
	require.NoError(t, err)

	ok, err = svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	// Просроченный токен не считается аутентификацией
	store.session.ExpiresAt = time.Now().Unix() - 10
	ok, err = svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestore(t *testing.T) {
	svc, store, api := newTestService(nil)

	_, err := svc.Restore(context.Background())
	require.ErrorIs(t, err, storage.ErrAuthNotFound)

	store.session = &storage.AuthData{
		Username:    "agent_ivanova",
		AccessToken: "tok-live",
		ExpiresAt:   time.Now().Unix() + 600,
	}
	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-live", session.AccessToken)
	require.Len(t, api.SetAccessTokenCalls(), 1)

	// Просроченная сессия возвращается, но токен не устанавливается
	store.session.ExpiresAt = time.Now().Unix() - 10
	session, err = svc.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, Expired(session))
	assert.Len(t, api.SetAccessTokenCalls(), 1)
}
