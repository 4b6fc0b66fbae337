package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
)

func seedProject(t *testing.T, s *Storage, agentID string) *models.Project {
	t.Helper()

	project := &models.Project{
		ID:         "pr1",
		PropertyID: "p1",
		ClientName: "Orlov",
		Status:     models.ProjectStatusConstruction,
		Milestones: []models.Milestone{
			{ID: "m1", Name: "foundation", Done: false},
			{ID: "m2", Name: "framing", Done: false},
			{ID: "m3", Name: "solar install", Done: false},
		},
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateProject(context.Background(), agentID, project))
	return project
}

func TestProjectLifecycle(t *testing.T) {
	s := createTestStorage(t)
	seedCatalog(t, s)
	agent := seedAgent(t, s, "agent_ivanova")
	seedProject(t, s, agent.ID)
	ctx := context.Background()

	projects, err := s.ListProjectsByAgent(ctx, agent.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "Orlov", p.ClientName)
	// Milestones сохраняют порядок вставки
	require.Len(t, p.Milestones, 3)
	assert.Equal(t, "m1", p.Milestones[0].ID)
	assert.Equal(t, "m3", p.Milestones[2].ID)
	assert.Empty(t, p.Notes)
}

func TestListProjects_OnlyOwnAgent(t *testing.T) {
	s := createTestStorage(t)
	seedCatalog(t, s)
	owner := seedAgent(t, s, "agent_ivanova")
	other := seedAgent(t, s, "agent_petrov")
	seedProject(t, s, owner.ID)

	projects, err := s.ListProjectsByAgent(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)

	_, err = s.GetProject(context.Background(), other.ID, "pr1")
	require.ErrorIs(t, err, storage.ErrProjectNotFound)
}

func TestSetMilestoneDone(t *testing.T) {
	s := createTestStorage(t)
	seedCatalog(t, s)
	agent := seedAgent(t, s, "agent_ivanova")
	seedProject(t, s, agent.ID)
	ctx := context.Background()

	at := time.Now().UTC()
	require.NoError(t, s.SetMilestoneDone(ctx, agent.ID, "pr1", "m2", true, at))

	project, err := s.GetProject(ctx, agent.ID, "pr1")
	require.NoError(t, err)
	assert.False(t, project.Milestones[0].Done)
	assert.True(t, project.Milestones[1].Done)
	assert.WithinDuration(t, at, project.UpdatedAt, time.Second)

	// Неизвестная веха
	err = s.SetMilestoneDone(ctx, agent.ID, "pr1", "ghost", true, at)
	require.ErrorIs(t, err, storage.ErrMilestoneNotFound)

	// Чужой проект
	other := seedAgent(t, s, "agent_petrov")
	err = s.SetMilestoneDone(ctx, other.ID, "pr1", "m1", true, at)
	require.ErrorIs(t, err, storage.ErrMilestoneNotFound)
}

func TestAddNote(t *testing.T) {
	s := createTestStorage(t)
	seedCatalog(t, s)
	agent := seedAgent(t, s, "agent_ivanova")
	seedProject(t, s, agent.ID)
	ctx := context.Background()

	require.NoError(t, s.AddNote(ctx, agent.ID, "pr1", &models.ProjectNote{
		Author: "agent_ivanova", Text: "client call done", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, s.AddNote(ctx, agent.ID, "pr1", &models.ProjectNote{
		Author: "agent_ivanova", Text: "solar panels ordered", CreatedAt: time.Now().UTC(),
	}))

	project, err := s.GetProject(ctx, agent.ID, "pr1")
	require.NoError(t, err)
	require.Len(t, project.Notes, 2)
	assert.Equal(t, "client call done", project.Notes[0].Text)
	assert.Equal(t, "solar panels ordered", project.Notes[1].Text)

	err = s.AddNote(ctx, agent.ID, "ghost", &models.ProjectNote{Author: "a", Text: "b", CreatedAt: time.Now()})
	require.ErrorIs(t, err, storage.ErrProjectNotFound)
}
