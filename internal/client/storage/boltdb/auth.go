package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ecoestate/internal/client/storage"
)

var keyAuthSession = []byte("session")

// SaveAuth stores the agent session, replacing any previous one
func (s *Storage) SaveAuth(ctx context.Context, data *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}
		return bucket.Put(keyAuthSession, raw)
	})
	if err != nil {
		return fmt.Errorf("save auth transaction failed: %w", err)
	}
	return nil
}

// GetAuth retrieves the stored agent session
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var data *storage.AuthData
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return storage.ErrAuthNotFound
		}
		raw := bucket.Get(keyAuthSession)
		if raw == nil {
			return storage.ErrAuthNotFound
		}
		data = &storage.AuthData{}
		if err := json.Unmarshal(raw, data); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DeleteAuth removes the stored agent session
func (s *Storage) DeleteAuth(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(keyAuthSession)
	})
	if err != nil {
		return fmt.Errorf("delete auth transaction failed: %w", err)
	}
	return nil
}
