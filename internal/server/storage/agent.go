package storage

import (
	"context"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
)

// AgentStorage defines interface for agent account persistence
type AgentStorage interface {
	// CreateAgent creates a new agent account
	// Returns ErrAgentAlreadyExists if username is taken
	CreateAgent(ctx context.Context, agent *models.Agent) error

	// GetAgentByUsername retrieves agent by username
	// Returns ErrAgentNotFound if agent doesn't exist
	GetAgentByUsername(ctx context.Context, username string) (*models.Agent, error)

	// GetAgentByID retrieves agent by ID
	// Returns ErrAgentNotFound if agent doesn't exist
	GetAgentByID(ctx context.Context, agentID string) (*models.Agent, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, agentID string, lastLogin time.Time) error
}
