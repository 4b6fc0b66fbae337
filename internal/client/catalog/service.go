// Package catalog is the read/search facade of the offline-first core.
//
// Reads are cache-through: network first while online, local cache as
// the fallback and the only source while offline. Every successful
// network read opportunistically refreshes the cache. Writes are
// optimistic: applied to the cache immediately and queued for replay
// when the server cannot confirm them right away.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/ecoestate/internal/client/cache"
	"github.com/iudanet/ecoestate/internal/client/connectivity"
	"github.com/iudanet/ecoestate/internal/client/queue"
	"github.com/iudanet/ecoestate/internal/client/storage"
	syncengine "github.com/iudanet/ecoestate/internal/client/sync"
	"github.com/iudanet/ecoestate/internal/models"
)

//go:generate go tool moq -out fetcher_mock.go . Fetcher

// Fetcher is the network contract the facade consumes: JSON in, JSON
// out, an error on non-2xx or timeout. *api.Client implements it.
type Fetcher interface {
	GetProperties(ctx context.Context) ([]models.Property, error)
	GetRegions(ctx context.Context) ([]models.Region, error)
	GetEcoFeatures(ctx context.Context) ([]models.EcoFeature, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	Replay(ctx context.Context, action *models.PendingAction) error
}

// Service composes the cache manager, mutation queue and sync engine
// behind per-entity-kind operations.
//
// cache, q and engine may be nil when the persistent store failed to
// initialize: the service then degrades to network-only behavior —
// reads fail outright while offline and writes fail loudly instead of
// silently losing data.
type Service struct {
	api     Fetcher
	cache   *cache.Manager
	queue   *queue.Queue
	engine  *syncengine.Engine
	monitor *connectivity.Monitor
	logger  *slog.Logger
}

// NewService creates the catalog facade
func NewService(
	api Fetcher,
	cacheManager *cache.Manager,
	q *queue.Queue,
	engine *syncengine.Engine,
	monitor *connectivity.Monitor,
	logger *slog.Logger,
) *Service {
	return &Service{
		api:     api,
		cache:   cacheManager,
		queue:   q,
		engine:  engine,
		monitor: monitor,
		logger:  logger,
	}
}

// Degraded reports whether the service runs without a persistent store
func (s *Service) Degraded() bool {
	return s.cache == nil
}

// Properties returns the property catalog: from the network while
// online (refreshing the cache), from the cache otherwise
func (s *Service) Properties(ctx context.Context) ([]models.Property, error) {
	if s.monitor.IsOnline() {
		props, err := s.api.GetProperties(ctx)
		if err == nil {
			s.refreshCache(ctx, models.KindProperties, propertyRecords(props))
			return props, nil
		}
		s.logger.Warn("network read failed, falling back to cache",
			"kind", models.KindProperties, "error", err)
	}
	return decodeRecords[models.Property](s.getCached(ctx, models.KindProperties))
}

// Regions returns the region list, cache-through
func (s *Service) Regions(ctx context.Context) ([]models.Region, error) {
	if s.monitor.IsOnline() {
		regions, err := s.api.GetRegions(ctx)
		if err == nil {
			s.refreshCache(ctx, models.KindRegions, regionRecords(regions))
			return regions, nil
		}
		s.logger.Warn("network read failed, falling back to cache",
			"kind", models.KindRegions, "error", err)
	}
	return decodeRecords[models.Region](s.getCached(ctx, models.KindRegions))
}

// EcoFeatures returns the eco feature list, cache-through
func (s *Service) EcoFeatures(ctx context.Context) ([]models.EcoFeature, error) {
	if s.monitor.IsOnline() {
		features, err := s.api.GetEcoFeatures(ctx)
		if err == nil {
			s.refreshCache(ctx, models.KindEcoFeatures, featureRecords(features))
			return features, nil
		}
		s.logger.Warn("network read failed, falling back to cache",
			"kind", models.KindEcoFeatures, "error", err)
	}
	return decodeRecords[models.EcoFeature](s.getCached(ctx, models.KindEcoFeatures))
}

// Projects returns the agent's projects, cache-through
func (s *Service) Projects(ctx context.Context) ([]models.Project, error) {
	if s.monitor.IsOnline() {
		projects, err := s.api.GetProjects(ctx)
		if err == nil {
			s.refreshCache(ctx, models.KindProjects, projectRecords(projects))
			return projects, nil
		}
		s.logger.Warn("network read failed, falling back to cache",
			"kind", models.KindProjects, "error", err)
	}
	return decodeRecords[models.Project](s.getCached(ctx, models.KindProjects))
}

// SearchProperties returns the properties matching the filter.
// Offline выборка по кэшу дает тот же результат, что сетевая по
// свежему каталогу: фильтр один и тот же, источник — полный набор.
func (s *Service) SearchProperties(ctx context.Context, filter func(models.Property) bool) ([]models.Property, error) {
	props, err := s.Properties(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Property, 0, len(props))
	for _, p := range props {
		if filter == nil || filter(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Refresh forces a network read-through for a kind.
// Никакого cache fallback: offline или недоступный сервер — ошибка.
func (s *Service) Refresh(ctx context.Context, kind models.EntityKind) error {
	var err error
	switch kind {
	case models.KindProperties:
		var props []models.Property
		if props, err = s.api.GetProperties(ctx); err == nil {
			err = s.storeAll(ctx, kind, propertyRecords(props))
		}
	case models.KindRegions:
		var regions []models.Region
		if regions, err = s.api.GetRegions(ctx); err == nil {
			err = s.storeAll(ctx, kind, regionRecords(regions))
		}
	case models.KindEcoFeatures:
		var features []models.EcoFeature
		if features, err = s.api.GetEcoFeatures(ctx); err == nil {
			err = s.storeAll(ctx, kind, featureRecords(features))
		}
	case models.KindProjects:
		var projects []models.Project
		if projects, err = s.api.GetProjects(ctx); err == nil {
			err = s.storeAll(ctx, kind, projectRecords(projects))
		}
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	if err != nil {
		return fmt.Errorf("refresh %s failed: %w", kind, err)
	}
	return nil
}

// CacheStats returns record counts per collection plus the pending
// action count, recomputed on demand
func (s *Service) CacheStats(ctx context.Context) (*models.CacheSnapshot, error) {
	if s.Degraded() {
		return nil, storage.ErrStorageUnavailable
	}

	records, err := s.cache.Stats(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.queue.Count(ctx, true)
	if err != nil {
		return nil, err
	}

	return &models.CacheSnapshot{
		Records: records,
		Pending: pending,
	}, nil
}

// PendingCount returns the number of actions awaiting replay
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	if s.Degraded() {
		return 0, storage.ErrStorageUnavailable
	}
	return s.queue.Count(ctx, true)
}

// SyncState returns the engine state, StateIdle in degraded mode
func (s *Service) SyncState() syncengine.State {
	if s.engine == nil {
		return syncengine.StateIdle
	}
	return s.engine.State()
}

// Watch runs the background sync loop until ctx is canceled: the
// connectivity prober feeds the monitor, online transitions and newly
// queued actions trigger drains, failed passes wait out the backoff
// delay. Blocks the caller.
func (s *Service) Watch(ctx context.Context, probeInterval time.Duration) error {
	if s.Degraded() {
		return storage.ErrStorageUnavailable
	}
	s.monitor.Start(ctx, probeInterval)
	s.engine.Run(ctx)
	return nil
}

// LastRefresh reports when a kind was last successfully refreshed from
// the network, zero if never
func (s *Service) LastRefresh(ctx context.Context, kind models.EntityKind) (time.Time, error) {
	if s.Degraded() {
		return time.Time{}, storage.ErrStorageUnavailable
	}
	return s.cache.LastRefresh(ctx, kind)
}

// SyncNow runs one manual drain pass
func (s *Service) SyncNow(ctx context.Context, force bool) (*syncengine.DrainResult, error) {
	if s.Degraded() {
		return nil, storage.ErrStorageUnavailable
	}
	return s.engine.SyncNow(ctx, force)
}

// getCached reads a collection from the cache, or fails with
// ErrStorageUnavailable in degraded mode
func (s *Service) getCached(ctx context.Context, kind models.EntityKind) ([]storage.Record, error) {
	if s.Degraded() {
		return nil, fmt.Errorf("offline and no local cache: %w", storage.ErrStorageUnavailable)
	}
	return s.cache.GetAll(ctx, kind)
}

// storeAll replaces a collection; error is surfaced to the caller
func (s *Service) storeAll(ctx context.Context, kind models.EntityKind, recs []storage.Record) error {
	if s.Degraded() {
		// Сетевое чтение прошло, кэшировать некуда — не ошибка
		return nil
	}
	return s.cache.ReplaceAll(ctx, kind, recs)
}

// refreshCache opportunistically replaces a collection after a
// successful network read; failures are logged, the read still succeeds
func (s *Service) refreshCache(ctx context.Context, kind models.EntityKind, recs []storage.Record) {
	if s.Degraded() {
		return
	}
	if err := s.cache.ReplaceAll(ctx, kind, recs); err != nil {
		s.logger.Warn("opportunistic cache refresh failed", "kind", kind, "error", err)
	}
}
