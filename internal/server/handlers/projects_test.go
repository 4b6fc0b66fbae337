package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
	"github.com/iudanet/ecoestate/pkg/api"
)

// mockProjectStorage is a mock implementation of ProjectStorage for testing
type mockProjectStorage struct {
	projects map[string]*models.Project // projectID -> Project
	ownerID  string
	notes    []*models.ProjectNote
	err      error
}

func (m *mockProjectStorage) ListProjectsByAgent(ctx context.Context, agentID string) ([]models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	if agentID != m.ownerID {
		return nil, nil
	}
	var out []models.Project
	for _, p := range m.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProjectStorage) GetProject(ctx context.Context, agentID, projectID string) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.projects[projectID]
	if !ok || agentID != m.ownerID {
		return nil, storage.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockProjectStorage) CreateProject(ctx context.Context, agentID string, project *models.Project) error {
	m.projects[project.ID] = project
	return m.err
}

func (m *mockProjectStorage) SetMilestoneDone(ctx context.Context, agentID, projectID, milestoneID string, done bool, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.projects[projectID]
	if !ok || agentID != m.ownerID {
		return storage.ErrMilestoneNotFound
	}
	for i := range p.Milestones {
		if p.Milestones[i].ID == milestoneID {
			p.Milestones[i].Done = done
			p.UpdatedAt = at
			return nil
		}
	}
	return storage.ErrMilestoneNotFound
}

func (m *mockProjectStorage) AddNote(ctx context.Context, agentID, projectID string, note *models.ProjectNote) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.projects[projectID]; !ok || agentID != m.ownerID {
		return storage.ErrProjectNotFound
	}
	m.notes = append(m.notes, note)
	return nil
}

func newMockProjects() *mockProjectStorage {
	return &mockProjectStorage{
		ownerID: "agent-1",
		projects: map[string]*models.Project{
			"pr1": {
				ID:         "pr1",
				PropertyID: "p1",
				ClientName: "Orlov",
				Status:     models.ProjectStatusConstruction,
				Milestones: []models.Milestone{
					{ID: "m1", Name: "foundation"},
					{ID: "m2", Name: "framing"},
				},
			},
		},
	}
}

// authedRequest собирает запрос с agent_id в контексте, как после AuthMiddleware
func authedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), AgentIDKey, "agent-1")
	ctx = context.WithValue(ctx, UsernameKey, "agent_ivanova")
	return req.WithContext(ctx)
}

func TestProjectsHandler_List(t *testing.T) {
	h := NewProjectsHandler(testLogger(), newMockProjects())

	w := httptest.NewRecorder()
	h.List(w, authedRequest(t, http.MethodGet, "/api/v1/projects", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ProjectsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "Orlov", resp.Projects[0].ClientName)
}

func TestProjectsHandler_List_NoContext(t *testing.T) {
	h := NewProjectsHandler(testLogger(), newMockProjects())

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectsHandler_UpdateMilestone(t *testing.T) {
	projects := newMockProjects()
	h := NewProjectsHandler(testLogger(), projects)

	req := authedRequest(t, http.MethodPut, "/api/v1/projects/pr1/milestones/m2",
		models.MilestonePayload{ProjectID: "pr1", MilestoneID: "m2", Done: true})
	req.SetPathValue("project", "pr1")
	req.SetPathValue("milestone", "m2")

	w := httptest.NewRecorder()
	h.UpdateMilestone(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, projects.projects["pr1"].Milestones[1].Done)
	assert.False(t, projects.projects["pr1"].Milestones[0].Done)
}

func TestProjectsHandler_UpdateMilestone_NotFound(t *testing.T) {
	h := NewProjectsHandler(testLogger(), newMockProjects())

	req := authedRequest(t, http.MethodPut, "/api/v1/projects/pr1/milestones/ghost",
		models.MilestonePayload{ProjectID: "pr1", MilestoneID: "ghost", Done: true})
	req.SetPathValue("project", "pr1")
	req.SetPathValue("milestone", "ghost")

	w := httptest.NewRecorder()
	h.UpdateMilestone(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectsHandler_AddNote(t *testing.T) {
	projects := newMockProjects()
	h := NewProjectsHandler(testLogger(), projects)

	req := authedRequest(t, http.MethodPost, "/api/v1/projects/pr1/notes",
		models.NotePayload{ProjectID: "pr1", Author: "agent_ivanova", Text: "client call done"})
	req.SetPathValue("project", "pr1")

	w := httptest.NewRecorder()
	h.AddNote(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, projects.notes, 1)
	assert.Equal(t, "client call done", projects.notes[0].Text)
	assert.False(t, projects.notes[0].CreatedAt.IsZero())
}

func TestProjectsHandler_AddNote_DefaultAuthor(t *testing.T) {
	projects := newMockProjects()
	h := NewProjectsHandler(testLogger(), projects)

	req := authedRequest(t, http.MethodPost, "/api/v1/projects/pr1/notes",
		models.NotePayload{ProjectID: "pr1", Text: "no author given"})
	req.SetPathValue("project", "pr1")

	w := httptest.NewRecorder()
	h.AddNote(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, projects.notes, 1)
	assert.Equal(t, "agent_ivanova", projects.notes[0].Author)
}

func TestProjectsHandler_AddNote_EmptyText(t *testing.T) {
	projects := newMockProjects()
	h := NewProjectsHandler(testLogger(), projects)

	req := authedRequest(t, http.MethodPost, "/api/v1/projects/pr1/notes",
		models.NotePayload{ProjectID: "pr1", Text: "   "})
	req.SetPathValue("project", "pr1")

	w := httptest.NewRecorder()
	h.AddNote(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, projects.notes)
}

func TestProjectsHandler_AddNote_UnknownProject(t *testing.T) {
	h := NewProjectsHandler(testLogger(), newMockProjects())

	req := authedRequest(t, http.MethodPost, "/api/v1/projects/ghost/notes",
		models.NotePayload{ProjectID: "ghost", Text: "hello"})
	req.SetPathValue("project", "ghost")

	w := httptest.NewRecorder()
	h.AddNote(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
