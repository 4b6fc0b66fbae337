// Package cache is the kind-scoped read/write facade over the persistent
// store. It answers "give me all X" and "replace all X" and supports
// filtered lookup over cached records without a network round trip.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

// FilterFunc решает, попадает ли сырая запись в выборку.
// Предикат задается вызывающей стороной и применяется к каждой записи.
type FilterFunc func(data []byte) bool

// Manager provides entity-kind-scoped access to the cache
type Manager struct {
	store  storage.CacheStorage
	logger *slog.Logger
}

// NewManager creates a cache manager over the given store
func NewManager(store storage.CacheStorage, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// ReplaceAll atomically clears and repopulates a collection.
// Используется после успешного полного fetch с сервера.
func (m *Manager) ReplaceAll(ctx context.Context, kind models.EntityKind, recs []storage.Record) error {
	if err := m.store.ReplaceAllRecords(ctx, kind, recs); err != nil {
		return fmt.Errorf("failed to replace %s: %w", kind, err)
	}
	m.markRefreshed(ctx, kind)
	m.logger.Debug("cache collection replaced", "kind", kind, "records", len(recs))
	return nil
}

// markRefreshed записывает отметку последнего refresh, если стор ведет
// метаданные. Отказ не ломает сам replace: коллекция уже обновлена.
func (m *Manager) markRefreshed(ctx context.Context, kind models.EntityKind) {
	meta, ok := m.store.(storage.MetadataStorage)
	if !ok {
		return
	}
	if err := meta.SaveLastRefresh(ctx, kind, time.Now()); err != nil {
		m.logger.Warn("failed to record last refresh", "kind", kind, "error", err)
	}
}

// LastRefresh returns the time of the last successful full refresh for
// a kind: zero if never refreshed or the store keeps no metadata
func (m *Manager) LastRefresh(ctx context.Context, kind models.EntityKind) (time.Time, error) {
	meta, ok := m.store.(storage.MetadataStorage)
	if !ok {
		return time.Time{}, nil
	}
	return meta.GetLastRefresh(ctx, kind)
}

// UpsertOne applies a single optimistic local edit without waiting on
// network confirmation
func (m *Manager) UpsertOne(ctx context.Context, kind models.EntityKind, rec storage.Record) error {
	if err := m.store.PutRecord(ctx, kind, rec); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", kind, err)
	}
	return nil
}

// GetOne returns a single cached record by id
func (m *Manager) GetOne(ctx context.Context, kind models.EntityKind, id string) (storage.Record, error) {
	return m.store.GetRecord(ctx, kind, id)
}

// GetAll returns all cached records of a kind
func (m *Manager) GetAll(ctx context.Context, kind models.EntityKind) ([]storage.Record, error) {
	return m.store.GetAllRecords(ctx, kind)
}

// Query returns cached records matching the filter.
// Never fails for an empty or absent collection: returns an empty slice.
func (m *Manager) Query(ctx context.Context, kind models.EntityKind, filter FilterFunc) ([]storage.Record, error) {
	recs, err := m.store.GetAllRecords(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}

	matched := recs[:0:0]
	for _, rec := range recs {
		if filter == nil || filter(rec.Data) {
			matched = append(matched, rec)
		}
	}
	if matched == nil {
		matched = []storage.Record{}
	}
	return matched, nil
}

// Stats returns per-kind record counts, recomputed on demand
func (m *Manager) Stats(ctx context.Context) (map[models.EntityKind]int, error) {
	counts := make(map[models.EntityKind]int, len(models.CacheKinds))
	for _, kind := range models.CacheKinds {
		n, err := m.store.CountRecords(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", kind, err)
		}
		counts[kind] = n
	}
	return counts, nil
}
