package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
	"github.com/iudanet/ecoestate/pkg/api"
)

// ProjectsHandler обрабатывает проекты агента.
// Все endpoint-ы требуют аутентификации: agent_id берется из контекста,
// установленного AuthMiddleware, и агент видит только свои проекты.
type ProjectsHandler struct {
	logger   *slog.Logger
	projects storage.ProjectStorage
}

// NewProjectsHandler создает новый handler проектов
func NewProjectsHandler(logger *slog.Logger, projects storage.ProjectStorage) *ProjectsHandler {
	return &ProjectsHandler{
		logger:   logger,
		projects: projects,
	}
}

// List обрабатывает GET /api/v1/projects
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID, ok := GetAgentID(ctx)
	if !ok {
		h.logger.Error("agent_id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.projects.ListProjectsByAgent(ctx, agentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list projects", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	sendJSON(h.logger, w, api.ProjectsResponse{Projects: projects}, http.StatusOK)
}

// UpdateMilestone обрабатывает PUT /api/v1/projects/{project}/milestones/{milestone}
// Тело запроса имеет форму models.MilestonePayload
func (h *ProjectsHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID, ok := GetAgentID(ctx)
	if !ok {
		h.logger.Error("agent_id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	projectID := r.PathValue("project")
	milestoneID := r.PathValue("milestone")
	if projectID == "" || milestoneID == "" {
		sendError(h.logger, w, "project and milestone ids are required", http.StatusBadRequest)
		return
	}

	var payload models.MilestonePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.WarnContext(ctx, "failed to decode milestone update", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.projects.SetMilestoneDone(ctx, agentID, projectID, milestoneID, payload.Done, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrMilestoneNotFound) {
			h.logger.WarnContext(ctx, "milestone not found",
				slog.String("project_id", projectID),
				slog.String("milestone_id", milestoneID))
			sendError(h.logger, w, "milestone not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update milestone", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "milestone updated",
		slog.String("project_id", projectID),
		slog.String("milestone_id", milestoneID),
		slog.Bool("done", payload.Done))

	w.WriteHeader(http.StatusNoContent)
}

// AddNote обрабатывает POST /api/v1/projects/{project}/notes
// Тело запроса имеет форму models.NotePayload
func (h *ProjectsHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID, ok := GetAgentID(ctx)
	if !ok {
		h.logger.Error("agent_id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	projectID := r.PathValue("project")
	if projectID == "" {
		sendError(h.logger, w, "project id is required", http.StatusBadRequest)
		return
	}

	var payload models.NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.WarnContext(ctx, "failed to decode note", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		sendError(h.logger, w, "note text is required", http.StatusBadRequest)
		return
	}

	author := payload.Author
	if author == "" {
		// Автор по умолчанию — аутентифицированный агент
		author, _ = GetUsername(ctx)
	}

	note := &models.ProjectNote{
		Author:    author,
		Text:      payload.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.projects.AddNote(ctx, agentID, projectID, note); err != nil {
		if errors.Is(err, storage.ErrProjectNotFound) {
			h.logger.WarnContext(ctx, "note for unknown project", slog.String("project_id", projectID))
			sendError(h.logger, w, "project not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to add note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note added", slog.String("project_id", projectID))

	w.WriteHeader(http.StatusCreated)
}
