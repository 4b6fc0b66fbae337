// Package connectivity tracks the client's online/offline state.
//
// The monitor is the single source of truth for connectivity: it is an
// explicitly owned instance injected into the sync engine and the catalog
// facade, never ambient global state. Environment signals (a background
// probe, a failed request, an OS hint) feed it through Set; downstream
// consumers observe transitions, never raw signals.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ProbeFunc проверяет фактическую достижимость сервера.
// Возвращает true, если сервер ответил.
type ProbeFunc func(ctx context.Context) bool

// Monitor tracks online/offline state and notifies subscribers on
// transitions. A signal that does not change the state is a no-op:
// subscribers are invoked exactly once per transition.
type Monitor struct {
	logger   *slog.Logger
	probe    ProbeFunc
	done     chan struct{}
	waiters  []chan struct{}
	subs     []func(online bool)
	wg       sync.WaitGroup
	mu       sync.Mutex
	notifyMu sync.Mutex
	online   bool
	started  bool
}

// NewMonitor creates a monitor with the given initial state.
// probe may be nil if the caller drives the state via Set only.
func NewMonitor(initial bool, probe ProbeFunc, logger *slog.Logger) *Monitor {
	return &Monitor{
		online: initial,
		probe:  probe,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// IsOnline returns the point-in-time connectivity state
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set records an environment signal. Повторный сигнал того же состояния
// игнорируется: подписчики видят только переходы.
//
// notifyMu сериализует доставку: два гоняющихся Set не могут выдать
// подписчикам переходы не в том порядке, в каком они зафиксированы.
// Колбэки не должны вызывать Set — это deadlock.
func (m *Monitor) Set(online bool) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online

	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)

	var waiters []chan struct{}
	if online {
		waiters = m.waiters
		m.waiters = nil
	}
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Info("connectivity transition", "online", online)
	}

	// Колбэки вызываются без mu, но под notifyMu
	for _, fn := range subs {
		if fn != nil {
			fn(online)
		}
	}
	for _, ch := range waiters {
		close(ch)
	}
}

// OnChange registers a callback invoked once per transition.
// Returns an unsubscribe function.
func (m *Monitor) OnChange(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subs = append(m.subs, fn)
	idx := len(m.subs) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if idx < len(m.subs) {
			m.subs[idx] = nil
		}
	}
}

// WaitForOnline blocks until the state becomes online or the context is
// canceled. Returns immediately if already online.
func (m *Monitor) WaitForOnline(ctx context.Context) error {
	m.mu.Lock()
	if m.online {
		m.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	m.waiters = append(m.waiters, ch)
	m.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start launches the background probe loop. No-op without a probe func.
// The loop stops when ctx is canceled or Close is called.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	m.mu.Lock()
	if m.started || m.probe == nil {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-m.done:
				return
			case <-ticker.C:
				m.Set(m.probe(ctx))
			}
		}
	}()
}

// Close stops the probe loop and waits for it to finish
func (m *Monitor) Close() {
	m.mu.Lock()
	select {
	case <-m.done:
	default:
		close(m.done)
	}
	m.mu.Unlock()
	m.wg.Wait()
}
