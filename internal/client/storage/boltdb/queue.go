package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

func decodeAction(data []byte) (*models.PendingAction, error) {
	action := &models.PendingAction{}
	if err := json.Unmarshal(data, action); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action: %w", err)
	}
	return action, nil
}

// AppendAction stores a new pending action and indexes it as unsynced.
// Ключ — action.ID (zero-padded наносекунды): порядок ключей в bucket
// совпадает с порядком вставки.
func (s *Storage) AppendAction(ctx context.Context, action *models.PendingAction) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if action.ID == "" {
		return fmt.Errorf("action id is empty")
	}

	data, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal action: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketActions).Put([]byte(action.ID), data); err != nil {
			return fmt.Errorf("failed to save action: %w", err)
		}
		if !action.Synced {
			if err := tx.Bucket(bucketUnsynced).Put([]byte(action.ID), nil); err != nil {
				return fmt.Errorf("failed to index action: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("append transaction failed: %w", err)
	}
	return nil
}

// GetAction retrieves an action by id
func (s *Storage) GetAction(ctx context.Context, id string) (*models.PendingAction, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var action *models.PendingAction
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketActions).Get([]byte(id))
		if data == nil {
			return storage.ErrActionNotFound
		}
		var err error
		action, err = decodeAction(data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return action, nil
}

// ListUnsynced returns unsynced actions oldest first.
// Идем курсором по индексу: ключи отсортированы, значит порядок вставки
// сохранен без дополнительной сортировки.
func (s *Storage) ListUnsynced(ctx context.Context) ([]*models.PendingAction, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	actions := []*models.PendingAction{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		idx := tx.Bucket(bucketUnsynced)
		main := tx.Bucket(bucketActions)

		c := idx.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			data := main.Get(k)
			if data == nil {
				// Индекс указывает на отсутствующее действие — пропускаем
				continue
			}
			action, err := decodeAction(data)
			if err != nil {
				return err
			}
			actions = append(actions, action)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list unsynced actions: %w", err)
	}
	return actions, nil
}

// MarkSynced flips synced=true and drops the action from the unsynced
// index. The action itself stays in the store for audit.
func (s *Storage) MarkSynced(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		main := tx.Bucket(bucketActions)
		data := main.Get([]byte(id))
		if data == nil {
			return storage.ErrActionNotFound
		}

		action, err := decodeAction(data)
		if err != nil {
			return err
		}
		action.Synced = true

		updated, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		if err := main.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save action: %w", err)
		}
		return tx.Bucket(bucketUnsynced).Delete([]byte(id))
	})
	if err != nil {
		if err == storage.ErrActionNotFound {
			return err
		}
		return fmt.Errorf("mark synced transaction failed: %w", err)
	}
	return nil
}

// IncrementRetry bumps the retry counter of an action
func (s *Storage) IncrementRetry(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		main := tx.Bucket(bucketActions)
		data := main.Get([]byte(id))
		if data == nil {
			return storage.ErrActionNotFound
		}

		action, err := decodeAction(data)
		if err != nil {
			return err
		}
		action.RetryCount++

		updated, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		return main.Put([]byte(id), updated)
	})
	if err != nil {
		if err == storage.ErrActionNotFound {
			return err
		}
		return fmt.Errorf("increment retry transaction failed: %w", err)
	}
	return nil
}

// CountActions returns the number of actions.
// unsyncedOnly считается по индексу, без скана очереди.
func (s *Storage) CountActions(ctx context.Context, unsyncedOnly bool) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		if unsyncedOnly {
			count = tx.Bucket(bucketUnsynced).Stats().KeyN
		} else {
			count = tx.Bucket(bucketActions).Stats().KeyN
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count actions: %w", err)
	}
	return count, nil
}

// PruneSynced deletes synced actions created before the cutoff
func (s *Storage) PruneSynced(ctx context.Context, before time.Time) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var pruned int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		main := tx.Bucket(bucketActions)

		// Сначала собираем ключи, удалять внутри ForEach нельзя
		var toDelete [][]byte
		err := main.ForEach(func(k, v []byte) error {
			action, err := decodeAction(v)
			if err != nil {
				return err
			}
			if action.Synced && action.CreatedAt.Before(before) {
				toDelete = append(toDelete, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range toDelete {
			if err := main.Delete(k); err != nil {
				return fmt.Errorf("failed to delete action: %w", err)
			}
		}
		pruned = len(toDelete)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("prune transaction failed: %w", err)
	}
	return pruned, nil
}
