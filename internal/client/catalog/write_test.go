package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
)

func seedProject(t *testing.T, env *testEnv) models.Project {
	t.Helper()

	project := models.Project{
		ID:         "pr1",
		PropertyID: "p1",
		ClientName: "Orlov",
		Status:     models.ProjectStatusConstruction,
		Milestones: []models.Milestone{
			{ID: "m1", Name: "foundation", Done: false},
			{ID: "m2", Name: "framing", Done: false},
		},
	}
	env.api.GetProjectsFunc = func(ctx context.Context) ([]models.Project, error) {
		return []models.Project{project}, nil
	}
	_, err := env.svc.Projects(context.Background())
	require.NoError(t, err)
	return project
}

func TestUpdateMilestone_OfflineVisibleImmediately(t *testing.T) {
	env := newTestEnv(t, true)
	seedProject(t, env)
	env.monitor.Set(false)

	res, err := env.svc.UpdateMilestone(context.Background(), models.MilestonePayload{
		ProjectID: "pr1", MilestoneID: "m1", Done: true,
	})
	require.NoError(t, err)
	assert.True(t, res.Queued)
	assert.NotEmpty(t, res.ActionID)

	// Оптимистичное изменение видно в offline-чтении сразу
	projects, err := env.svc.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].Milestones[0].Done)
	assert.False(t, projects[0].Milestones[1].Done)

	// В очередь легло ровно одно несинхронизированное действие
	require.Len(t, env.queue.order, 1)
	action := env.queue.actions[env.queue.order[0]]
	assert.Equal(t, models.ActionMilestoneUpdate, action.Kind)
	assert.Equal(t, "PUT", action.Method)
	assert.Equal(t, "/api/v1/projects/pr1/milestones/m1", action.Endpoint)
	assert.False(t, action.Synced)
}

func TestAddNote_OfflineAppends(t *testing.T) {
	env := newTestEnv(t, true)
	seedProject(t, env)
	env.monitor.Set(false)

	_, err := env.svc.AddNote(context.Background(), models.NotePayload{
		ProjectID: "pr1", Author: "ivanova", Text: "client approved the solar layout",
	})
	require.NoError(t, err)

	projects, err := env.svc.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Notes, 1)
	assert.Equal(t, "ivanova", projects[0].Notes[0].Author)
	assert.False(t, projects[0].Notes[0].CreatedAt.IsZero())
}

func TestSubmitInquiry_OnlineConfirmedDirectly(t *testing.T) {
	env := newTestEnv(t, true)
	env.api.ReplayFunc = func(ctx context.Context, action *models.PendingAction) error {
		return nil
	}

	res, err := env.svc.SubmitInquiry(context.Background(), models.InquiryPayload{
		PropertyID: "p1", Name: "Petrov", Email: "petrov@example.com", Message: "viewing request",
	})
	require.NoError(t, err)
	assert.False(t, res.Queued)
	assert.Empty(t, res.ActionID)

	// Подтверждено сервером: очередь не трогали
	assert.Empty(t, env.queue.order)
	require.Len(t, env.api.ReplayCalls(), 1)
	assert.Equal(t, "/api/v1/properties/p1/inquiries", env.api.ReplayCalls()[0].Action.Endpoint)
}

func TestSubmitInquiry_OnlineFailureQueues(t *testing.T) {
	env := newTestEnv(t, true)
	env.api.ReplayFunc = func(ctx context.Context, action *models.PendingAction) error {
		return errors.New("502 bad gateway")
	}

	res, err := env.svc.SubmitInquiry(context.Background(), models.InquiryPayload{
		PropertyID: "p1", Email: "petrov@example.com",
	})
	require.NoError(t, err)
	assert.True(t, res.Queued)
	require.Len(t, env.queue.order, 1)
}

func TestWrite_InvalidPayloadRejectedAtBoundary(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.svc.SubmitInquiry(context.Background(), models.InquiryPayload{
		PropertyID: "p1", // email пустой
	})
	require.ErrorIs(t, err, models.ErrInvalidPayload)
	assert.Empty(t, env.queue.order)

	_, err = env.svc.UpdateMilestone(context.Background(), models.MilestonePayload{
		ProjectID: "pr1", // milestone_id пустой
	})
	require.ErrorIs(t, err, models.ErrInvalidPayload)
	assert.Empty(t, env.queue.order)
}

func TestWrite_MissingProjectSkipsOptimisticApply(t *testing.T) {
	env := newTestEnv(t, false)

	// Проекта нет в кэше: действие все равно в очереди, кэш не трогаем
	res, err := env.svc.UpdateMilestone(context.Background(), models.MilestonePayload{
		ProjectID: "ghost", MilestoneID: "m1", Done: true,
	})
	require.NoError(t, err)
	assert.True(t, res.Queued)
	assert.Empty(t, env.cache.recs[models.KindProjects])
}

func TestWrite_DegradedOfflineRejected(t *testing.T) {
	svc, _ := newDegradedEnv(false)

	_, err := svc.SubmitInquiry(context.Background(), models.InquiryPayload{
		PropertyID: "p1", Email: "petrov@example.com",
	})
	require.Error(t, err)
}

func TestWrite_DegradedOnlineFailureLoud(t *testing.T) {
	svc, api := newDegradedEnv(true)
	api.ReplayFunc = func(ctx context.Context, action *models.PendingAction) error {
		return errors.New("503 unavailable")
	}

	_, err := svc.SubmitInquiry(context.Background(), models.InquiryPayload{
		PropertyID: "p1", Email: "petrov@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no offline queue")
}
