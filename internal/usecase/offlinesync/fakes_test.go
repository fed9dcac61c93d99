//go:build unit

package offlinesync_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/infra/kvstore"
	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/idgen"
	"event-sync-service/internal/usecase/offlinesync"
	"event-sync-service/internal/usecase/shared"
)

var (
	testNow    = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	errRemote  = errors.New("boom")
	errStorage = errors.New("disk full")
	discard    = slog.New(slog.DiscardHandler)
)

type fakeNetwork struct {
	mu     sync.Mutex
	online bool
	subs   []chan bool
}

func newFakeNetwork(online bool) *fakeNetwork {
	return &fakeNetwork{online: online}
}

func (n *fakeNetwork) IsOnline() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.online
}

func (n *fakeNetwork) Subscribe() (<-chan bool, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan bool, 1)
	n.subs = append(n.subs, ch)
	return ch, func() {}
}

func (n *fakeNetwork) set(online bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.online == online {
		return
	}
	n.online = online
	for _, ch := range n.subs {
		select {
		case ch <- online:
		default:
		}
	}
}

// remoteSpy counts calls per record id and keeps the call order.
type remoteSpy struct {
	mu       sync.Mutex
	calls    map[string]int
	order    []string
	regFail  func(offline.Registration) error
	scanFail func(offline.MealScan) error
	issueQR  func(offline.Registration) string
	block    chan struct{}
	entered  chan struct{}
}

func newRemoteSpy() *remoteSpy {
	return &remoteSpy{calls: map[string]int{}}
}

func (r *remoteSpy) record(id string) {
	r.mu.Lock()
	r.calls[id]++
	r.order = append(r.order, id)
	r.mu.Unlock()
}

func (r *remoteSpy) CreateRegistration(_ context.Context, reg offline.Registration) (string, error) {
	r.record(reg.ID)
	if r.entered != nil {
		r.entered <- struct{}{}
	}
	if r.block != nil {
		<-r.block
	}
	if r.regFail != nil {
		if err := r.regFail(reg); err != nil {
			return "", err
		}
	}
	if r.issueQR != nil {
		return r.issueQR(reg), nil
	}
	return "", nil
}

func (r *remoteSpy) CreateMealAttendance(_ context.Context, scan offline.MealScan) error {
	r.record(scan.ID)
	if r.scanFail != nil {
		return r.scanFail(scan)
	}
	return nil
}

func (r *remoteSpy) callsFor(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[id]
}

func (r *remoteSpy) callOrder() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func (r *remoteSpy) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// flakyStore fails writes on demand.
type flakyStore struct {
	*kvstore.MemoryStore
	failSet atomic.Bool
	writes  atomic.Int32
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: kvstore.NewMemoryStore(discard)}
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failSet.Load() {
		return errStorage
	}
	s.writes.Add(1)
	return s.MemoryStore.Set(ctx, key, value)
}

type eventRecorder struct {
	mu     sync.Mutex
	events []shared.Event
}

func (e *eventRecorder) Publish(ev shared.Event) {
	e.mu.Lock()
	e.events = append(e.events, ev)
	e.mu.Unlock()
}

func (e *eventRecorder) types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Type)
	}
	return out
}

type fixture struct {
	store   *flakyStore
	network *fakeNetwork
	remote  *remoteSpy
	events  *eventRecorder
	clock   *clock.MockClock
	manager *offlinesync.Manager
}

func newFixture(opts offlinesync.Options) *fixture {
	f := &fixture{
		store:   newFlakyStore(),
		network: newFakeNetwork(true),
		remote:  newRemoteSpy(),
		events:  &eventRecorder{},
		clock:   clock.NewMockClock(testNow),
	}
	f.manager = f.newManager(opts)
	return f
}

// newManager builds a manager over the fixture's store, as after a restart.
func (f *fixture) newManager(opts offlinesync.Options) *offlinesync.Manager {
	return offlinesync.NewManager(offlinesync.Deps{
		Store:         f.store,
		Network:       f.network,
		Registrations: f.remote,
		MealScans:     f.remote,
		Events:        f.events,
		IDs:           idgen.NewSequenceGenerator(),
		Clock:         f.clock,
		Logger:        discard,
	}, opts)
}

func participant(first string) offline.ParticipantData {
	return offline.ParticipantData{FirstName: first, LastName: "Tester", Email: first + "@example.com"}
}

func okScan() offline.ScanResult {
	return offline.ScanResult{Success: true, ParticipantName: "Ada Tester"}
}
