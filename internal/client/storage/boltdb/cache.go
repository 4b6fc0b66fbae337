package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

// PutRecord upserts a record by id; overwrites wholesale
func (s *Storage) PutRecord(ctx context.Context, kind models.EntityKind, rec storage.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if rec.ID == "" {
		return fmt.Errorf("record id is empty")
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(kind))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return bucket.Put([]byte(rec.ID), rec.Data)
	})
	if err != nil {
		return fmt.Errorf("put transaction failed: %w", err)
	}
	return nil
}

// GetRecord retrieves a record by id
func (s *Storage) GetRecord(ctx context.Context, kind models.EntityKind, id string) (storage.Record, error) {
	if s.db == nil {
		return storage.Record{}, storage.ErrStorageClosed
	}

	var rec storage.Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kind))
		if bucket == nil {
			return storage.ErrRecordNotFound
		}
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}
		// Копируем: bbolt память валидна только внутри транзакции
		rec = storage.Record{ID: id, Data: append([]byte(nil), data...)}
		return nil
	})
	if err != nil {
		return storage.Record{}, err
	}
	return rec, nil
}

// GetAllRecords returns all records of a kind.
// Absent collection yields an empty slice.
func (s *Storage) GetAllRecords(ctx context.Context, kind models.EntityKind) ([]storage.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	recs := []storage.Record{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kind))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			recs = append(recs, storage.Record{
				ID:   string(k),
				Data: append([]byte(nil), v...),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return recs, nil
}

// ReplaceAllRecords atomically clears and repopulates a collection.
// Одна транзакция: кэш никогда не содержит смесь двух fetch-поколений.
func (s *Storage) ReplaceAllRecords(ctx context.Context, kind models.EntityKind, recs []storage.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(kind)); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		bucket, err := tx.CreateBucket([]byte(kind))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		for _, rec := range recs {
			if rec.ID == "" {
				return fmt.Errorf("record id is empty")
			}
			if err := bucket.Put([]byte(rec.ID), rec.Data); err != nil {
				return fmt.Errorf("failed to put record %s: %w", rec.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace transaction failed: %w", err)
	}
	return nil
}

// DeleteRecord removes a record by id; missing id is a no-op
func (s *Storage) DeleteRecord(ctx context.Context, kind models.EntityKind, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kind))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}
	return nil
}

// ClearRecords removes all records of a kind
func (s *Storage) ClearRecords(ctx context.Context, kind models.EntityKind) error {
	return s.ReplaceAllRecords(ctx, kind, nil)
}

// CountRecords returns the number of records of a kind
func (s *Storage) CountRecords(ctx context.Context, kind models.EntityKind) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kind))
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
