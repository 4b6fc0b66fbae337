package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/client/cache"
	"github.com/iudanet/ecoestate/internal/client/connectivity"
	"github.com/iudanet/ecoestate/internal/client/queue"
	"github.com/iudanet/ecoestate/internal/client/storage"
	syncengine "github.com/iudanet/ecoestate/internal/client/sync"
	"github.com/iudanet/ecoestate/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memCacheStore держит записи в map, порядок вставки в order.
// Подкладывается под CacheStorageMock для тестов фасада.
type memCacheStore struct {
	recs  map[models.EntityKind]map[string][]byte
	order map[models.EntityKind][]string
}

func newMemCacheStore() (*memCacheStore, *storage.CacheStorageMock) {
	m := &memCacheStore{
		recs:  make(map[models.EntityKind]map[string][]byte),
		order: make(map[models.EntityKind][]string),
	}
	mock := &storage.CacheStorageMock{
		PutRecordFunc: func(ctx context.Context, kind models.EntityKind, rec storage.Record) error {
			m.put(kind, rec)
			return nil
		},
		GetRecordFunc: func(ctx context.Context, kind models.EntityKind, id string) (storage.Record, error) {
			if data, ok := m.recs[kind][id]; ok {
				return storage.Record{ID: id, Data: data}, nil
			}
			return storage.Record{}, storage.ErrRecordNotFound
		},
		GetAllRecordsFunc: func(ctx context.Context, kind models.EntityKind) ([]storage.Record, error) {
			out := make([]storage.Record, 0, len(m.order[kind]))
			for _, id := range m.order[kind] {
				out = append(out, storage.Record{ID: id, Data: m.recs[kind][id]})
			}
			return out, nil
		},
		ReplaceAllRecordsFunc: func(ctx context.Context, kind models.EntityKind, recs []storage.Record) error {
			m.recs[kind] = make(map[string][]byte)
			m.order[kind] = nil
			for _, rec := range recs {
				m.put(kind, rec)
			}
			return nil
		},
		CountRecordsFunc: func(ctx context.Context, kind models.EntityKind) (int, error) {
			return len(m.recs[kind]), nil
		},
	}
	return m, mock
}

func (m *memCacheStore) put(kind models.EntityKind, rec storage.Record) {
	if m.recs[kind] == nil {
		m.recs[kind] = make(map[string][]byte)
	}
	if _, exists := m.recs[kind][rec.ID]; !exists {
		m.order[kind] = append(m.order[kind], rec.ID)
	}
	m.recs[kind][rec.ID] = rec.Data
}

// memQueueStore минимальная in-memory очередь под QueueStorageMock.
// mutex нужен тестам Watch: движок ходит в очередь из своей goroutine.
type memQueueStore struct {
	mu      stdsync.Mutex
	actions map[string]*models.PendingAction
	order   []string
}

func newMemQueueStore() (*memQueueStore, *storage.QueueStorageMock) {
	m := &memQueueStore{actions: make(map[string]*models.PendingAction)}
	mock := &storage.QueueStorageMock{
		AppendActionFunc: func(ctx context.Context, action *models.PendingAction) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.actions[action.ID] = action.Clone()
			m.order = append(m.order, action.ID)
			return nil
		},
		ListUnsyncedFunc: func(ctx context.Context) ([]*models.PendingAction, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var out []*models.PendingAction
			for _, id := range m.order {
				if a := m.actions[id]; !a.Synced {
					out = append(out, a.Clone())
				}
			}
			return out, nil
		},
		MarkSyncedFunc: func(ctx context.Context, id string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			a, ok := m.actions[id]
			if !ok {
				return storage.ErrActionNotFound
			}
			a.Synced = true
			return nil
		},
		IncrementRetryFunc: func(ctx context.Context, id string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			a, ok := m.actions[id]
			if !ok {
				return storage.ErrActionNotFound
			}
			a.RetryCount++
			return nil
		},
		CountActionsFunc: func(ctx context.Context, unsyncedOnly bool) (int, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if !unsyncedOnly {
				return len(m.actions), nil
			}
			n := 0
			for _, a := range m.actions {
				if !a.Synced {
					n++
				}
			}
			return n, nil
		},
	}
	return m, mock
}

type testEnv struct {
	svc     *Service
	api     *FetcherMock
	monitor *connectivity.Monitor
	cache   *memCacheStore
	queue   *memQueueStore
}

func newTestEnv(t *testing.T, online bool) *testEnv {
	t.Helper()

	api := &FetcherMock{}
	cacheStore, cacheMock := newMemCacheStore()
	queueStore, queueMock := newMemQueueStore()
	monitor := connectivity.NewMonitor(online, nil, testLogger())

	svc := NewService(
		api,
		cache.NewManager(cacheMock, testLogger()),
		queue.New(queueMock, testLogger()),
		nil,
		monitor,
		testLogger(),
	)
	return &testEnv{svc: svc, api: api, monitor: monitor, cache: cacheStore, queue: queueStore}
}

// newDegradedEnv собирает сервис без стора: сетевой режим без кэша
func newDegradedEnv(online bool) (*Service, *FetcherMock) {
	api := &FetcherMock{}
	monitor := connectivity.NewMonitor(online, nil, testLogger())
	svc := NewService(api, nil, nil, nil, monitor, testLogger())
	return svc, api
}

func sampleProperties() []models.Property {
	return []models.Property{
		{ID: "p1", Title: "Solar Villa", RegionID: "r1", Status: models.PropertyStatusAvailable, Price: 52_000_000, Bedrooms: 4},
		{ID: "p2", Title: "Eco Loft", RegionID: "r1", Status: models.PropertyStatusReserved, Price: 18_500_000, Bedrooms: 2},
		{ID: "p3", Title: "Green Terrace", RegionID: "r2", Status: models.PropertyStatusAvailable, Price: 33_700_000, Bedrooms: 3},
	}
}

func TestProperties_OnlineRefreshesCache(t *testing.T) {
	env := newTestEnv(t, true)
	env.api.GetPropertiesFunc = func(ctx context.Context) ([]models.Property, error) {
		return sampleProperties(), nil
	}

	props, err := env.svc.Properties(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 3)

	// Сетевое чтение должно было наполнить кэш
	assert.Len(t, env.cache.recs[models.KindProperties], 3)

	// Уходим в offline: читаем то же самое из кэша, сеть не трогаем
	env.monitor.Set(false)
	cached, err := env.svc.Properties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, props, cached)
	assert.Len(t, env.api.GetPropertiesCalls(), 1)
}

func TestProperties_NetworkFailureFallsBackToCache(t *testing.T) {
	env := newTestEnv(t, true)
	calls := 0
	env.api.GetPropertiesFunc = func(ctx context.Context) ([]models.Property, error) {
		calls++
		if calls == 1 {
			return sampleProperties(), nil
		}
		return nil, errors.New("connection refused")
	}

	_, err := env.svc.Properties(context.Background())
	require.NoError(t, err)

	// Монитор еще считает нас online, но сеть падает: fallback на кэш
	props, err := env.svc.Properties(context.Background())
	require.NoError(t, err)
	assert.Len(t, props, 3)
}

func TestProperties_OfflineEmptyCache(t *testing.T) {
	env := newTestEnv(t, false)

	props, err := env.svc.Properties(context.Background())
	require.NoError(t, err)
	assert.Empty(t, props)
	assert.Empty(t, env.api.GetPropertiesCalls())
}

func TestSearchProperties_OfflineMatchesOnline(t *testing.T) {
	env := newTestEnv(t, true)
	env.api.GetPropertiesFunc = func(ctx context.Context) ([]models.Property, error) {
		return sampleProperties(), nil
	}

	available := func(p models.Property) bool {
		return p.Status == models.PropertyStatusAvailable && p.Bedrooms >= 3
	}

	online, err := env.svc.SearchProperties(context.Background(), available)
	require.NoError(t, err)

	env.monitor.Set(false)
	offline, err := env.svc.SearchProperties(context.Background(), available)
	require.NoError(t, err)

	// Один и тот же фильтр над одним и тем же каталогом
	assert.Equal(t, online, offline)
	require.Len(t, offline, 2)
	assert.Equal(t, "p1", offline[0].ID)
	assert.Equal(t, "p3", offline[1].ID)
}

func TestRefresh_NoFallbackOnFailure(t *testing.T) {
	env := newTestEnv(t, true)
	env.api.GetRegionsFunc = func(ctx context.Context) ([]models.Region, error) {
		return nil, errors.New("gateway timeout")
	}

	err := env.svc.Refresh(context.Background(), models.KindRegions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway timeout")
}

func TestRefresh_UnknownKind(t *testing.T) {
	env := newTestEnv(t, true)

	err := env.svc.Refresh(context.Background(), models.EntityKind("listings"))
	require.Error(t, err)
}

func TestCacheStats(t *testing.T) {
	env := newTestEnv(t, true)
	env.api.GetPropertiesFunc = func(ctx context.Context) ([]models.Property, error) {
		return sampleProperties(), nil
	}
	env.api.GetRegionsFunc = func(ctx context.Context) ([]models.Region, error) {
		return []models.Region{{ID: "r1", Name: "Ladoga North"}}, nil
	}

	_, err := env.svc.Properties(context.Background())
	require.NoError(t, err)
	_, err = env.svc.Regions(context.Background())
	require.NoError(t, err)

	env.monitor.Set(false)
	_, err = env.svc.AddNote(context.Background(), models.NotePayload{
		ProjectID: "pr1", Author: "ivanova", Text: "client call",
	})
	require.NoError(t, err)

	snap, err := env.svc.CacheStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Records[models.KindProperties])
	assert.Equal(t, 1, snap.Records[models.KindRegions])
	assert.Equal(t, 0, snap.Records[models.KindProjects])
	assert.Equal(t, 1, snap.Pending)
}

func TestDegraded_OfflineReadFails(t *testing.T) {
	svc, _ := newDegradedEnv(false)

	_, err := svc.Properties(context.Background())
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)
}

func TestDegraded_OnlineReadWorks(t *testing.T) {
	svc, api := newDegradedEnv(true)
	api.GetPropertiesFunc = func(ctx context.Context) ([]models.Property, error) {
		return sampleProperties(), nil
	}

	props, err := svc.Properties(context.Background())
	require.NoError(t, err)
	assert.Len(t, props, 3)
}

func TestDegraded_StatsUnavailable(t *testing.T) {
	svc, _ := newDegradedEnv(true)

	_, err := svc.CacheStats(context.Background())
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)

	_, err = svc.PendingCount(context.Background())
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)
}

func TestProjects_CacheDecodeRoundTrip(t *testing.T) {
	env := newTestEnv(t, true)
	project := models.Project{
		ID:         "pr1",
		PropertyID: "p1",
		ClientName: "Orlov",
		Status:     models.ProjectStatusConstruction,
		Milestones: []models.Milestone{{ID: "m1", Name: "foundation", Done: true}},
	}
	env.api.GetProjectsFunc = func(ctx context.Context) ([]models.Project, error) {
		return []models.Project{project}, nil
	}

	_, err := env.svc.Projects(context.Background())
	require.NoError(t, err)

	env.monitor.Set(false)
	got, err := env.svc.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, project.Milestones, got[0].Milestones)

	// Кэшированный JSON действительно доменная структура
	raw := env.cache.recs[models.KindProjects]["pr1"]
	var decoded models.Project
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, models.ProjectStatusConstruction, decoded.Status)
}

// newSyncEnv как newTestEnv, но с настоящим движком: Watch гоняет
// его в отдельной goroutine, поэтому фейковая очередь под мьютексом
func newSyncEnv(t *testing.T, online bool) *testEnv {
	t.Helper()

	api := &FetcherMock{}
	cacheStore, cacheMock := newMemCacheStore()
	queueStore, queueMock := newMemQueueStore()
	monitor := connectivity.NewMonitor(online, nil, testLogger())
	q := queue.New(queueMock, testLogger())
	engine := syncengine.NewEngine(q, api, monitor, syncengine.DefaultBackoffPolicy(), nil, testLogger())

	svc := NewService(
		api,
		cache.NewManager(cacheMock, testLogger()),
		q,
		engine,
		monitor,
		testLogger(),
	)
	return &testEnv{svc: svc, api: api, monitor: monitor, cache: cacheStore, queue: queueStore}
}

func TestWatch_DrainsOnReconnect(t *testing.T) {
	env := newSyncEnv(t, false)
	env.api.ReplayFunc = func(ctx context.Context, action *models.PendingAction) error {
		return nil
	}

	_, err := env.svc.SubmitInquiry(context.Background(), models.InquiryPayload{
		PropertyID: "p1", Name: "Petrov", Email: "petrov@example.com", Message: "viewing request",
	})
	require.NoError(t, err)

	pending, err := env.svc.PendingCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, pending)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		// интервал заведомо больше теста: переходами управляет Set
		_ = env.svc.Watch(ctx, time.Hour)
	}()

	env.monitor.Set(true)

	require.Eventually(t, func() bool {
		n, countErr := env.svc.PendingCount(context.Background())
		return countErr == nil && n == 0
	}, 2*time.Second, 10*time.Millisecond, "queue should drain after reconnect")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_Degraded(t *testing.T) {
	svc, _ := newDegradedEnv(true)

	err := svc.Watch(context.Background(), time.Hour)
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)
}
