package storage

import (
	"context"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
)

// ProjectStorage defines interface for construction project persistence
type ProjectStorage interface {
	// ListProjectsByAgent retrieves the agent's projects with milestones
	// and notes attached
	ListProjectsByAgent(ctx context.Context, agentID string) ([]models.Project, error)

	// GetProject retrieves a single project with milestones and notes.
	// Returns ErrProjectNotFound if it doesn't exist or belongs to
	// another agent.
	GetProject(ctx context.Context, agentID, projectID string) (*models.Project, error)

	// CreateProject creates a project with its milestones
	CreateProject(ctx context.Context, agentID string, project *models.Project) error

	// SetMilestoneDone toggles a milestone done flag.
	// Returns ErrMilestoneNotFound if the milestone doesn't exist within
	// the agent's project.
	SetMilestoneDone(ctx context.Context, agentID, projectID, milestoneID string, done bool, at time.Time) error

	// AddNote appends a note to the agent's project.
	// Returns ErrProjectNotFound if the project doesn't exist.
	AddNote(ctx context.Context, agentID, projectID string, note *models.ProjectNote) error
}
