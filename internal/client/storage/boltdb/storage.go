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

var (
	// BoltDB bucket names
	bucketMetadata = []byte("metadata")
	bucketAuth     = []byte("auth")
	bucketActions  = []byte("pending_actions")
	// bucketUnsynced — вторичный индекс по synced=false: ключи действий,
	// ещё не подтверждённых сервером. Добавлен в схеме v2.
	bucketUnsynced = []byte("pending_unsynced")

	keySchemaVersion = []byte("schema_version")
)

// currentSchemaVersion текущая версия схемы локальной БД.
// v1: коллекции каталога + очередь + metadata + auth
// v2: индекс pending_unsynced
const currentSchemaVersion uint64 = 2

// Storage represents BoltDB storage implementation for the client.
// One open connection serializes all operations; a second process gets
// ErrStorageUnavailable instead of blocking on the file lock.
type Storage struct {
	db *bbolt.DB
}

// New opens the local database and brings the schema up to date.
// Idempotent: existing collections are never touched, an older database
// only gains the buckets it is missing.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Timeout чтобы второй процесс не висел на file lock
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open boltdb: %v", storage.ErrStorageUnavailable, err)
	}

	s := &Storage{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to migrate schema: %v", storage.ErrStorageUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// migrate создает недостающие buckets и поднимает версию схемы.
// Существующие данные не трогаются: upgrade только добавляет.
func (s *Storage) migrate() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		version, err := readSchemaVersion(tx)
		if err != nil {
			return err
		}
		if version == currentSchemaVersion {
			return nil
		}
		if version > currentSchemaVersion {
			return fmt.Errorf("database schema v%d is newer than supported v%d", version, currentSchemaVersion)
		}

		// v0 -> v1: базовые коллекции
		if version < 1 {
			for _, kind := range models.CacheKinds {
				if _, err := tx.CreateBucketIfNotExists([]byte(kind)); err != nil {
					return fmt.Errorf("failed to create %s bucket: %w", kind, err)
				}
			}
			for _, name := range [][]byte{bucketMetadata, bucketAuth, bucketActions} {
				if _, err := tx.CreateBucketIfNotExists(name); err != nil {
					return fmt.Errorf("failed to create %s bucket: %w", name, err)
				}
			}
		}

		// v1 -> v2: индекс по несинхронизированным действиям,
		// заполняется сканом существующей очереди
		if version < 2 {
			idx, err := tx.CreateBucketIfNotExists(bucketUnsynced)
			if err != nil {
				return fmt.Errorf("failed to create unsynced index: %w", err)
			}
			actions := tx.Bucket(bucketActions)
			err = actions.ForEach(func(k, v []byte) error {
				action, err := decodeAction(v)
				if err != nil {
					return err
				}
				if !action.Synced {
					return idx.Put(k, nil)
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to backfill unsynced index: %w", err)
			}
		}

		return writeSchemaVersion(tx, currentSchemaVersion)
	})
}

// SchemaVersion returns the schema version of the open database
func (s *Storage) SchemaVersion(ctx context.Context) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var version uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		v, err := readSchemaVersion(tx)
		if err != nil {
			return err
		}
		version = v
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func readSchemaVersion(tx *bbolt.Tx) (uint64, error) {
	meta := tx.Bucket(bucketMetadata)
	if meta == nil {
		// Нет metadata bucket — свежая база
		return 0, nil
	}
	raw := meta.Get(keySchemaVersion)
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("corrupt schema version: %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

func writeSchemaVersion(tx *bbolt.Tx, version uint64) error {
	meta, err := tx.CreateBucketIfNotExists(bucketMetadata)
	if err != nil {
		return fmt.Errorf("failed to create metadata bucket: %w", err)
	}
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, version)
	if err := meta.Put(keySchemaVersion, raw); err != nil {
		return fmt.Errorf("failed to write schema version: %w", err)
	}
	return nil
}
