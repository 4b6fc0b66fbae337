// Package auth manages the agent session: login against the server,
// the token persisted between CLI invocations, logout.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/validation"
	pkgapi "github.com/iudanet/ecoestate/pkg/api"
)

//go:generate go tool moq -out authapi_mock.go . API

// API is the slice of the HTTP client the session service needs
type API interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	SetAccessToken(token string)
}

// Service предоставляет функции авторизации агента
type Service struct {
	api   API
	store storage.AuthStorage
}

// NewService создает новый сервис авторизации
func NewService(api API, store storage.AuthStorage) *Service {
	return &Service{
		api:   api,
		store: store,
	}
}

// Login authenticates the agent and persists the session.
// Токен сразу устанавливается на HTTP клиент текущего процесса.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	tokens, err := s.api.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.AuthData{
		Username:    username,
		AccessToken: tokens.AccessToken,
		ExpiresAt:   time.Now().Unix() + tokens.ExpiresIn,
	}
	if err := s.store.SaveAuth(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.api.SetAccessToken(session.AccessToken)
	return session, nil
}

// Logout removes the persisted session.
// Отсутствие сессии не ошибка: logout идемпотентен.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.api.SetAccessToken("")
	return nil
}

// Session returns the persisted session, expired or not.
// Returns storage.ErrAuthNotFound when no session exists.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.store.GetAuth(ctx)
}

// Restore loads the persisted session and, if the token is still
// valid, sets it on the HTTP client. Returns the session either way
// so callers can report expiry.
func (s *Service) Restore(ctx context.Context) (*storage.AuthData, error) {
	session, err := s.store.GetAuth(ctx)
	if err != nil {
		return nil, err
	}
	if !Expired(session) {
		s.api.SetAccessToken(session.AccessToken)
	}
	return session, nil
}

// IsAuthenticated reports whether a non-expired session exists
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}
	return !Expired(session), nil
}

// Expired reports whether the session token lifetime has passed
func Expired(session *storage.AuthData) bool {
	return time.Now().Unix() >= session.ExpiresAt
}
