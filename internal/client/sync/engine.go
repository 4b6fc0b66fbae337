// Package sync drains the mutation queue against the remote API.
//
// The engine is a state machine: Idle until connectivity returns or an
// action is enqueued while online, Draining while it replays queued
// actions in order, Backoff(n) after a failed replay. A pass halts on
// the first failure rather than reordering around it: later actions may
// be causally dependent on the failed one.
package sync

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/ecoestate/internal/client/connectivity"
	"github.com/iudanet/ecoestate/internal/client/queue"
	"github.com/iudanet/ecoestate/internal/models"
)

//go:generate go tool moq -out replayer_mock.go . Replayer

// Replayer replays one pending action against its endpoint.
// Must fail, not hang: timeouts are the network layer's responsibility.
type Replayer interface {
	Replay(ctx context.Context, action *models.PendingAction) error
}

// State состояние движка синхронизации
type State int

const (
	StateIdle State = iota
	StateDraining
	StateBackoff
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraining:
		return "draining"
	case StateBackoff:
		return "backoff"
	}
	return "unknown"
}

// DrainResult contains the outcome of one drain pass
type DrainResult struct {
	Replayed  int // подтверждено сервером и помечено synced
	Failed    int // 0 или 1: проход останавливается на первой ошибке
	Skipped   int // достигнута граница повторов, replay не предпринимался
	Remaining int // осталось несинхронизированных действий
}

// Engine orchestrates queue draining
type Engine struct {
	queue    *queue.Queue
	replayer Replayer
	monitor  *connectivity.Monitor
	clock    Clock
	logger   *slog.Logger

	trigger chan struct{}
	offline chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup

	mu       sync.Mutex
	state    State
	backoffN int

	policy BackoffPolicy
}

// NewEngine creates a sync engine. clock may be nil for the wall clock.
func NewEngine(
	q *queue.Queue,
	replayer Replayer,
	monitor *connectivity.Monitor,
	policy BackoffPolicy,
	clock Clock,
	logger *slog.Logger,
) *Engine {
	if clock == nil {
		clock = RealClock()
	}
	return &Engine{
		queue:    q,
		replayer: replayer,
		monitor:  monitor,
		policy:   policy,
		clock:    clock,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
		offline:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// State returns the current engine state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) setState(s State, backoffN int) {
	e.mu.Lock()
	e.state = s
	e.backoffN = backoffN
	e.mu.Unlock()
}

// NotifyEnqueued signals that a new action was queued.
// Запускает drain только если мы online: offline-очередь разгрузится
// при следующем переходе в online.
func (e *Engine) NotifyEnqueued() {
	if e.monitor.IsOnline() {
		e.kick()
	}
}

func (e *Engine) kick() {
	select {
	case e.trigger <- struct{}{}:
	default:
	}
}

// Run drives the engine until ctx is canceled: online transitions and
// NotifyEnqueued start a drain, failures wait out the backoff delay,
// offline transitions abort the pass.
func (e *Engine) Run(ctx context.Context) {
	unsubscribe := e.monitor.OnChange(func(online bool) {
		if online {
			e.kick()
			return
		}
		// Offline: любое ожидание backoff прерывается, состояние Idle
		select {
		case e.offline <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	// Стартовый проход, если очередь не пуста и мы online
	if e.monitor.IsOnline() {
		e.kick()
	}

	e.wg.Add(1)
	defer e.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.done:
			return
		case <-e.offline:
			e.setState(StateIdle, 0)
		case <-e.trigger:
			e.drainWithBackoff(ctx)
		}
	}
}

// Close stops a running engine
func (e *Engine) Close() {
	select {
	case <-e.done:
	default:
		close(e.done)
	}
	e.wg.Wait()
}

// drainWithBackoff выполняет проходы drain, выжидая backoff между
// неудачными, пока очередь не опустеет или мы не уйдем в offline
func (e *Engine) drainWithBackoff(ctx context.Context) {
	for {
		result, err := e.drain(ctx, false)
		if err != nil {
			e.logger.Error("drain pass failed", "error", err)
			e.setState(StateIdle, 0)
			return
		}

		e.mu.Lock()
		state, n := e.state, e.backoffN
		e.mu.Unlock()

		if state != StateBackoff {
			return
		}

		delay := e.policy.Delay(n)
		e.logger.Info("entering backoff",
			"attempt", n,
			"delay", delay,
			"remaining", result.Remaining)

		select {
		case <-ctx.Done():
			return
		case <-e.done:
			return
		case <-e.offline:
			e.setState(StateIdle, 0)
			return
		case <-e.trigger:
			// Свежий online-переход или новое действие: повторяем сразу
		case <-e.clock.After(delay):
		}
	}
}

// SyncNow performs one synchronous drain pass.
// force ignores the retry bound once, for a manual operator retry.
func (e *Engine) SyncNow(ctx context.Context, force bool) (*DrainResult, error) {
	return e.drain(ctx, force)
}

// drain replays unsynced actions strictly in insertion order.
// Первая ошибка останавливает проход: действие получает +1 к retry
// count, движок уходит в Backoff, хвост очереди не трогается.
func (e *Engine) drain(ctx context.Context, force bool) (*DrainResult, error) {
	e.setState(StateDraining, 0)

	actions, err := e.queue.ListUnsynced(ctx)
	if err != nil {
		e.setState(StateIdle, 0)
		return nil, err
	}

	result := &DrainResult{Remaining: len(actions)}

	for i, action := range actions {
		// Уход в offline прерывает проход; in-flight вызовы упадут сами
		if !e.monitor.IsOnline() {
			e.logger.Info("drain aborted: offline", "remaining", result.Remaining)
			e.setState(StateIdle, 0)
			return result, nil
		}

		if !force && e.policy.Exhausted(action.RetryCount) {
			// Граница повторов достигнута. Действие не бросаем и не
			// обходим: очередь ждет ручного sync --force, счетчик
			// pending продолжает его учитывать.
			e.logger.Warn("action retries exhausted, waiting for manual sync",
				"action_id", action.ID,
				"kind", action.Kind,
				"retry_count", action.RetryCount)
			result.Skipped = 1
			e.setState(StateIdle, 0)
			return result, nil
		}

		if err := e.replayer.Replay(ctx, action); err != nil {
			e.logger.Warn("replay failed",
				"action_id", action.ID,
				"kind", action.Kind,
				"retry_count", action.RetryCount+1,
				"error", err)

			if ierr := e.queue.IncrementRetry(ctx, action.ID); ierr != nil {
				e.setState(StateIdle, 0)
				return result, ierr
			}
			result.Failed = 1
			e.setState(StateBackoff, action.RetryCount+1)
			return result, nil
		}

		if err := e.queue.MarkSynced(ctx, action.ID); err != nil {
			e.setState(StateIdle, 0)
			return result, err
		}

		result.Replayed++
		result.Remaining = len(actions) - i - 1

		e.logger.Info("action replayed",
			"action_id", action.ID,
			"kind", action.Kind,
			"remaining", result.Remaining)
	}

	e.setState(StateIdle, 0)
	return result, nil
}
