package services

import (
	"context"
	"log/slog"
	"sync"
)

// Connection states reported by ConnectionWatcher
const (
	StateConnecting = "connecting"
	StateConnected  = "connected"
	StateError      = "error"
)

// ConnectionWatcher consumes a one-shot connect notification and logs the outcome.
// Nothing blocks on the result; it is only logged and remembered for reporting.
type ConnectionWatcher struct {
	name      string
	connected string
	result    <-chan error
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	state     string
	lastErr   error
}

// NewConnectionWatcher creates a watcher for the given notification channel.
// connectedMsg is logged verbatim when the attempt succeeds.
func NewConnectionWatcher(name, connectedMsg string, result <-chan error, logger *slog.Logger) *ConnectionWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &ConnectionWatcher{
		name:      name,
		connected: connectedMsg,
		result:    result,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		state:     StateConnecting,
	}
}

// Start launches the background goroutine waiting for the connect result
func (w *ConnectionWatcher) Start() {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.worker()
}

func (w *ConnectionWatcher) worker() {
	defer w.wg.Done()

	select {
	case <-w.ctx.Done():
		return
	case err, ok := <-w.result:
		if !ok {
			return
		}
		w.mu.Lock()
		w.lastErr = err
		if err != nil {
			w.state = StateError
		} else {
			w.state = StateConnected
		}
		w.mu.Unlock()

		if err != nil {
			w.logger.Error(w.name+" connection error", slog.String("error", err.Error()))
			return
		}
		w.logger.Info(w.connected)
	}
}

// State returns the last observed connection state and error
func (w *ConnectionWatcher) State() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state, w.lastErr
}

// Wait blocks until the watcher has handled the result or was shut down
func (w *ConnectionWatcher) Wait() {
	w.wg.Wait()
}

// Shutdown stops the watcher if the result has not arrived yet
func (w *ConnectionWatcher) Shutdown() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}
