// Package network tracks whether the remote API is reachable.
package network

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/shared"
)

// Prober checks reachability once.
type Prober interface {
	Ping(ctx context.Context) error
}

// HTTPProber treats any response below 500 as reachable.
type HTTPProber struct {
	URL    string
	Client *http.Client
}

func (p HTTPProber) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build probe request")
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return errs.Newf("probe returned %s", resp.Status)
	}
	return nil
}

type Options struct {
	InitialOnline bool
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// Monitor implements shared.NetworkController. A manual SetOnline pins the
// state until ResumeProbing is called.
type Monitor struct {
	prober Prober
	events shared.EventPublisher
	clock  clock.Clock
	logger *slog.Logger
	opts   Options

	mu       sync.Mutex
	online   bool
	override bool
	subs     map[int]chan bool
	nextSub  int

	stop context.CancelFunc
	done chan struct{}
}

func NewMonitor(prober Prober, events shared.EventPublisher, clk clock.Clock, logger *slog.Logger, opts Options) *Monitor {
	if events == nil {
		events = shared.NopPublisher{}
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = 3 * time.Second
	}
	return &Monitor{
		prober: prober,
		events: events,
		clock:  clk,
		logger: logger.With("component", "network"),
		opts:   opts,
		online: opts.InitialOnline,
		subs:   make(map[int]chan bool),
	}
}

func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe returns a channel of transitions. Slow subscribers miss
// intermediate transitions but always see the latest one.
func (m *Monitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan bool, 1)
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	m.override = true
	m.mu.Unlock()
	m.transition(online, "manual")
}

func (m *Monitor) ResumeProbing() {
	m.mu.Lock()
	m.override = false
	m.mu.Unlock()
	m.logger.Info("manual network override cleared")
}

func (m *Monitor) Overridden() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.override
}

func (m *Monitor) transition(online bool, source string) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		ch <- online
	}
	m.mu.Unlock()

	m.logger.Info("network state changed", "online", online, "source", source)
	m.events.Publish(shared.Event{
		Type:      shared.EventNetworkChanged,
		Data:      map[string]any{"online": online, "source": source},
		Timestamp: m.clock.Now(),
	})
}

// Start begins periodic probing. Without a prober the state only changes
// through SetOnline.
func (m *Monitor) Start(ctx context.Context) error {
	if m.prober == nil || m.opts.ProbeInterval <= 0 {
		return nil
	}
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.stop = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.opts.ProbeInterval)
		defer ticker.Stop()

		m.probe(loopCtx)
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				m.probe(loopCtx)
			}
		}
	}()
	return nil
}

func (m *Monitor) Stop(ctx context.Context) error {
	if m.stop == nil {
		return nil
	}
	m.stop()
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Monitor) probe(ctx context.Context) {
	if m.Overridden() {
		return
	}
	probeCtx, cancel := context.WithTimeout(ctx, m.opts.ProbeTimeout)
	defer cancel()

	err := m.prober.Ping(probeCtx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		m.logger.Debug("reachability probe failed", "error", err)
	}
	if m.Overridden() {
		return
	}
	m.transition(err == nil, "probe")
}
