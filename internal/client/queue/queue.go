// Package queue is the durable, ordered record of writes awaiting server
// confirmation. The UI side only ever appends; synced/retry transitions
// belong to the sync engine.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

// Queue wraps the persistent mutation queue with kind validation at the
// enqueue boundary
type Queue struct {
	store  storage.QueueStorage
	logger *slog.Logger
}

// New creates a mutation queue over the given store
func New(store storage.QueueStorage, logger *slog.Logger) *Queue {
	return &Queue{
		store:  store,
		logger: logger,
	}
}

// Enqueue validates the payload for the kind, builds the action and
// appends it. Никогда не отклоняет валидное действие, кроме как при
// ошибке хранилища.
func (q *Queue) Enqueue(ctx context.Context, kind models.ActionKind, payload any) (*models.PendingAction, error) {
	action, err := models.NewPendingAction(kind, payload)
	if err != nil {
		return nil, err
	}

	if err := q.store.AppendAction(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to enqueue action: %w", err)
	}

	q.logger.Info("action queued",
		"action_id", action.ID,
		"kind", action.Kind,
		"endpoint", action.Endpoint)
	return action, nil
}

// ListUnsynced returns pending actions oldest first
func (q *Queue) ListUnsynced(ctx context.Context) ([]*models.PendingAction, error) {
	return q.store.ListUnsynced(ctx)
}

// MarkSynced flips synced=true after confirmed server acceptance
func (q *Queue) MarkSynced(ctx context.Context, id string) error {
	if err := q.store.MarkSynced(ctx, id); err != nil {
		return fmt.Errorf("failed to mark action synced: %w", err)
	}
	return nil
}

// IncrementRetry bumps the retry counter of a failed action
func (q *Queue) IncrementRetry(ctx context.Context, id string) error {
	if err := q.store.IncrementRetry(ctx, id); err != nil {
		return fmt.Errorf("failed to increment retry: %w", err)
	}
	return nil
}

// Count returns the number of actions, optionally unsynced only
func (q *Queue) Count(ctx context.Context, unsyncedOnly bool) (int, error) {
	return q.store.CountActions(ctx, unsyncedOnly)
}

// PruneSynced removes synced actions older than maxAge.
// Maintenance operation; unsynced actions are never dropped.
func (q *Queue) PruneSynced(ctx context.Context, maxAge time.Duration) (int, error) {
	pruned, err := q.store.PruneSynced(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to prune queue: %w", err)
	}
	if pruned > 0 {
		q.logger.Info("pruned synced actions", "count", pruned)
	}
	return pruned, nil
}
