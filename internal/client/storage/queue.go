package storage

import (
	"context"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
)

//go:generate go tool moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the durable mutation queue on the client.
// Actions are append-only; only Synced and RetryCount ever change after
// enqueue, and those transitions belong to the sync engine.
type QueueStorage interface {
	// AppendAction stores a new pending action
	AppendAction(ctx context.Context, action *models.PendingAction) error

	// GetAction retrieves an action by id.
	// Returns ErrActionNotFound if the action doesn't exist.
	GetAction(ctx context.Context, id string) (*models.PendingAction, error)

	// ListUnsynced returns all unsynced actions oldest first.
	// Insertion order is a hard invariant: replay must preserve the
	// user-intended sequencing of writes.
	ListUnsynced(ctx context.Context) ([]*models.PendingAction, error)

	// MarkSynced flips synced=true; the action stays in the store for audit
	MarkSynced(ctx context.Context, id string) error

	// IncrementRetry bumps the retry counter of an unsynced action
	IncrementRetry(ctx context.Context, id string) error

	// CountActions returns the number of actions, optionally unsynced only.
	// The unsynced count is index-based, not a full scan.
	CountActions(ctx context.Context, unsyncedOnly bool) (int, error)

	// PruneSynced deletes synced actions created before the cutoff.
	// Maintenance operation, never touches unsynced actions.
	PruneSynced(ctx context.Context, before time.Time) (int, error)
}
