package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

func lastRefreshKey(kind models.EntityKind) []byte {
	return []byte("last_refresh_" + string(kind))
}

// SaveLastRefresh saves the time of the last successful refresh for a kind
func (s *Storage) SaveLastRefresh(ctx context.Context, kind models.EntityKind, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		if meta == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, uint64(at.UnixNano()))

		if err := meta.Put(lastRefreshKey(kind), raw); err != nil {
			return fmt.Errorf("failed to save last refresh: %w", err)
		}
		return nil
	})
}

// GetLastRefresh retrieves the time of the last successful refresh.
// Returns the zero time if the kind has never been refreshed.
func (s *Storage) GetLastRefresh(ctx context.Context, kind models.EntityKind) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var at time.Time
	err := s.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		if meta == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := meta.Get(lastRefreshKey(kind))
		if raw == nil {
			// Kind еще ни разу не обновлялся с сервера
			return nil
		}
		if len(raw) != 8 {
			return fmt.Errorf("corrupt last refresh value: %d bytes", len(raw))
		}
		at = time.Unix(0, int64(binary.BigEndian.Uint64(raw)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last refresh: %w", err)
	}
	return at, nil
}
