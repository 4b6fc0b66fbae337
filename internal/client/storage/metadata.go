package storage

import (
	"context"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
)

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastRefresh saves the time of the last successful network
	// read-through for a kind
	SaveLastRefresh(ctx context.Context, kind models.EntityKind, at time.Time) error

	// GetLastRefresh retrieves the time of the last successful refresh.
	// Returns the zero time if the kind has never been refreshed.
	GetLastRefresh(ctx context.Context, kind models.EntityKind) (time.Time, error)

	// SchemaVersion returns the schema version of the open database
	SchemaVersion(ctx context.Context) (uint64, error)
}
