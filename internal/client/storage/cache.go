package storage

import (
	"context"

	"github.com/iudanet/ecoestate/internal/models"
)

// Record is a cached domain entity as last known from the server or from
// a local optimistic edit. The payload is opaque to the store: the core
// validates only structural identity (presence of an id).
type Record struct {
	ID   string `json:"id"`
	Data []byte `json:"data"`
}

//go:generate go tool moq -out cachestorage_mock.go . CacheStorage

// CacheStorage defines the kind-scoped persistent cache on the client
type CacheStorage interface {
	// PutRecord upserts a record by id; overwrites wholesale, no partial merge
	PutRecord(ctx context.Context, kind models.EntityKind, rec Record) error

	// GetRecord retrieves a record by id.
	// Returns ErrRecordNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, kind models.EntityKind, id string) (Record, error)

	// GetAllRecords returns all records of a kind, order unspecified.
	// An absent collection yields an empty slice, not an error.
	GetAllRecords(ctx context.Context, kind models.EntityKind) ([]Record, error)

	// ReplaceAllRecords atomically clears the collection and writes the
	// given records in a single transaction, so the cache never contains
	// a mix of two fetch generations
	ReplaceAllRecords(ctx context.Context, kind models.EntityKind, recs []Record) error

	// DeleteRecord removes a record by id; deleting a missing id is a no-op
	DeleteRecord(ctx context.Context, kind models.EntityKind, id string) error

	// ClearRecords removes all records of a kind
	ClearRecords(ctx context.Context, kind models.EntityKind) error

	// CountRecords returns the number of records of a kind
	CountRecords(ctx context.Context, kind models.EntityKind) (int, error)
}
