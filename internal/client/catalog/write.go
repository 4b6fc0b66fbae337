package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

// WriteResult describes how a domain write was handled
type WriteResult struct {
	// ActionID идентификатор отложенного действия, если Queued
	ActionID string
	// Queued: true — записано в очередь, false — подтверждено сервером
	Queued bool
}

// SubmitInquiry submits a buyer inquiry for a property.
// Заявка не кэшируется (не кэшируемый kind), оптимистичного
// обновления кэша нет.
func (s *Service) SubmitInquiry(ctx context.Context, payload models.InquiryPayload) (*WriteResult, error) {
	return s.write(ctx, models.ActionPropertyInquiry, payload, nil)
}

// UpdateMilestone toggles a project milestone done flag
func (s *Service) UpdateMilestone(ctx context.Context, payload models.MilestonePayload) (*WriteResult, error) {
	return s.write(ctx, models.ActionMilestoneUpdate, payload, func(ctx context.Context) {
		s.applyMilestone(ctx, payload)
	})
}

// AddNote appends an agent note to a project
func (s *Service) AddNote(ctx context.Context, payload models.NotePayload) (*WriteResult, error) {
	return s.write(ctx, models.ActionProjectNote, payload, func(ctx context.Context) {
		s.applyNote(ctx, payload)
	})
}

// write is the common write-path algorithm: a direct network write
// while online, the optimistic-apply-and-enqueue fallback otherwise.
// apply is the optimistic cache update; it runs on both paths so
// subsequent offline reads reflect the write.
func (s *Service) write(
	ctx context.Context,
	kind models.ActionKind,
	payload any,
	apply func(ctx context.Context),
) (*WriteResult, error) {
	// Валидация формы payload на границе
	action, err := models.NewPendingAction(kind, payload)
	if err != nil {
		return nil, err
	}

	if s.monitor.IsOnline() {
		if err := s.api.Replay(ctx, action); err == nil {
			if apply != nil {
				apply(ctx)
			}
			return &WriteResult{Queued: false}, nil
		} else {
			if s.Degraded() {
				// Деградация: очереди нет, терять запись молча нельзя
				return nil, fmt.Errorf("write failed with no offline queue: %w", err)
			}
			s.logger.Warn("direct write failed, queueing for replay",
				"kind", kind, "error", err)
		}
	}

	// Offline или сетевой сбой: оптимистичное локальное применение
	// плюс запись в очередь. Пользователь видит изменение сразу.
	if s.Degraded() {
		return nil, fmt.Errorf("offline write rejected: %w", storage.ErrStorageUnavailable)
	}

	if apply != nil {
		apply(ctx)
	}

	queued, err := s.queue.Enqueue(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	if s.engine != nil {
		s.engine.NotifyEnqueued()
	}

	return &WriteResult{Queued: true, ActionID: queued.ID}, nil
}

// applyMilestone mutates the cached project record in place.
// Отсутствие проекта в кэше не ошибка: запись появится при следующем
// успешном fetch.
func (s *Service) applyMilestone(ctx context.Context, payload models.MilestonePayload) {
	s.mutateProject(ctx, payload.ProjectID, func(p *models.Project) {
		for i := range p.Milestones {
			if p.Milestones[i].ID == payload.MilestoneID {
				p.Milestones[i].Done = payload.Done
				return
			}
		}
	})
}

func (s *Service) applyNote(ctx context.Context, payload models.NotePayload) {
	s.mutateProject(ctx, payload.ProjectID, func(p *models.Project) {
		p.Notes = append(p.Notes, models.ProjectNote{
			Author:    payload.Author,
			Text:      payload.Text,
			CreatedAt: time.Now(),
		})
	})
}

func (s *Service) mutateProject(ctx context.Context, projectID string, mutate func(*models.Project)) {
	if s.Degraded() {
		return
	}

	rec, err := s.cache.GetOne(ctx, models.KindProjects, projectID)
	if err != nil {
		if !errors.Is(err, storage.ErrRecordNotFound) {
			s.logger.Warn("optimistic update read failed", "project_id", projectID, "error", err)
		}
		return
	}

	var project models.Project
	if err := json.Unmarshal(rec.Data, &project); err != nil {
		s.logger.Warn("optimistic update decode failed", "project_id", projectID, "error", err)
		return
	}

	mutate(&project)
	project.UpdatedAt = time.Now()

	updated, err := encodeRecord(project.ID, project)
	if err != nil {
		s.logger.Warn("optimistic update encode failed", "project_id", projectID, "error", err)
		return
	}
	if err := s.cache.UpsertOne(ctx, models.KindProjects, updated); err != nil {
		s.logger.Warn("optimistic update write failed", "project_id", projectID, "error", err)
	}
}
