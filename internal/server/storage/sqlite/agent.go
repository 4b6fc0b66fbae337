package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
)

// CreateAgent creates a new agent account
func (s *Storage) CreateAgent(ctx context.Context, agent *models.Agent) error {
	query := `
		INSERT INTO agents (id, username, password_hash, created_at, last_login)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		agent.ID,
		agent.Username,
		agent.PasswordHash,
		agent.CreatedAt,
		agent.LastLogin,
	)

	if err != nil {
		// Проверяем на duplicate username
		if strings.Contains(err.Error(), "UNIQUE constraint failed: agents.username") {
			return storage.ErrAgentAlreadyExists
		}
		return fmt.Errorf("failed to insert agent: %w", err)
	}

	return nil
}

// GetAgentByUsername retrieves agent by username
func (s *Storage) GetAgentByUsername(ctx context.Context, username string) (*models.Agent, error) {
	query := `
		SELECT id, username, password_hash, created_at, last_login
		FROM agents
		WHERE username = ?
	`
	return s.scanAgent(s.db.QueryRowContext(ctx, query, username))
}

// GetAgentByID retrieves agent by ID
func (s *Storage) GetAgentByID(ctx context.Context, agentID string) (*models.Agent, error) {
	query := `
		SELECT id, username, password_hash, created_at, last_login
		FROM agents
		WHERE id = ?
	`
	return s.scanAgent(s.db.QueryRowContext(ctx, query, agentID))
}

// UpdateLastLogin updates the last login timestamp
func (s *Storage) UpdateLastLogin(ctx context.Context, agentID string, lastLogin time.Time) error {
	query := `UPDATE agents SET last_login = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lastLogin, agentID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrAgentNotFound
	}

	return nil
}

func (s *Storage) scanAgent(row *sql.Row) (*models.Agent, error) {
	agent := &models.Agent{}
	var lastLogin sql.NullTime

	err := row.Scan(
		&agent.ID,
		&agent.Username,
		&agent.PasswordHash,
		&agent.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	if lastLogin.Valid {
		agent.LastLogin = &lastLogin.Time
	}

	return agent, nil
}
