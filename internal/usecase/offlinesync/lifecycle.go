package offlinesync

import (
	"context"
	"time"

	"event-sync-service/internal/pkg/errs"
)

var ErrAlreadyStarted = errs.New("offline sync manager already started")

// Start subscribes to network transitions and starts the periodic sync timer.
// The loop runs until Stop is called.
func (m *Manager) Start(ctx context.Context) error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	if m.stop != nil {
		return ErrAlreadyStarted
	}

	transitions, unsubscribe := m.network.Subscribe()
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	m.stop = cancel
	m.done = done

	go func() {
		defer close(done)
		defer unsubscribe()
		m.run(loopCtx, transitions)
	}()

	m.logger.Info("offline sync manager started", "interval", m.opts.SyncInterval)
	return nil
}

// Stop halts the loop and waits for an in-flight pass to finish, bounded by ctx.
func (m *Manager) Stop(ctx context.Context) error {
	m.lifecycleMu.Lock()
	cancel, done := m.stop, m.done
	m.stop, m.done = nil, nil
	m.lifecycleMu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		m.logger.Info("offline sync manager stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "offline sync manager did not stop in time")
	}
}

func (m *Manager) run(ctx context.Context, transitions <-chan bool) {
	ticker := time.NewTicker(m.opts.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-transitions:
			if !ok {
				transitions = nil
				continue
			}
			if !online {
				m.logger.Info("network went offline")
				continue
			}
			m.logger.Info("network came back online, syncing")
			m.logResult(m.SyncOfflineData(ctx))
		case <-ticker.C:
			if m.network.IsOnline() && !m.SyncInProgress() {
				m.logResult(m.SyncOfflineData(ctx))
			}
		}
	}
}

func (m *Manager) logResult(result SyncResult) {
	if result.Success {
		return
	}
	for _, e := range result.Errors {
		m.logger.Warn("background sync error", "error", e)
	}
}
