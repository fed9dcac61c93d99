// Package offlinesync keeps registrations and meal scans captured without
// connectivity and pushes them to the remote API once it is reachable.
//
// Durability is best effort: a failed write to the KeyValueStore is logged and
// the in-memory state keeps serving callers, so a process restart after such a
// failure loses the records created since the last successful write.
package offlinesync

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/pkg/idgen"
	"event-sync-service/internal/usecase/shared"
)

const storeTimeout = 5 * time.Second

type Options struct {
	StorageKey   string
	MaxRetries   int
	SyncInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.StorageKey == "" {
		o.StorageKey = DefaultStorageKey
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.SyncInterval <= 0 {
		o.SyncInterval = DefaultSyncInterval
	}
	return o
}

type Deps struct {
	Store         shared.KeyValueStore
	Network       shared.NetworkStatusSource
	Registrations RegistrationCreator
	MealScans     MealAttendanceCreator
	Events        shared.EventPublisher
	IDs           idgen.Generator
	Clock         clock.Clock
	Logger        *slog.Logger
}

type Manager struct {
	store   shared.KeyValueStore
	network shared.NetworkStatusSource
	regs    RegistrationCreator
	scans   MealAttendanceCreator
	events  shared.EventPublisher
	ids     idgen.Generator
	clock   clock.Clock
	logger  *slog.Logger
	opts    Options

	// persistMu orders snapshot+write pairs so an older snapshot never
	// overwrites a newer one. Lock order: persistMu, then mu.
	persistMu sync.Mutex
	mu        sync.Mutex
	data      *offline.Data
	syncing   bool

	lifecycleMu sync.Mutex
	stop        context.CancelFunc
	done        chan struct{}
}

// NewManager loads the persisted aggregate, falling back to an empty one when
// the entry is missing or unreadable.
func NewManager(deps Deps, opts Options) *Manager {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.IDs == nil {
		deps.IDs = idgen.NewRandomGenerator(deps.Clock)
	}
	if deps.Events == nil {
		deps.Events = shared.NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	m := &Manager{
		store:   deps.Store,
		network: deps.Network,
		regs:    deps.Registrations,
		scans:   deps.MealScans,
		events:  deps.Events,
		ids:     deps.IDs,
		clock:   deps.Clock,
		logger:  deps.Logger.With("component", "offline_sync"),
		opts:    opts.withDefaults(),
	}
	m.data = m.load()
	return m
}

func (m *Manager) load() *offline.Data {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, err := m.store.Get(ctx, m.opts.StorageKey)
	if err != nil {
		if !errs.Is(err, shared.ErrKeyNotFound) {
			m.logger.Warn("failed to load offline data, starting empty", "error", err)
		}
		return offline.NewData(m.clock.Now())
	}

	data, err := offline.UnmarshalData([]byte(raw))
	if err != nil {
		m.logger.Warn("stored offline data is corrupt, starting empty", "error", err)
		return offline.NewData(m.clock.Now())
	}

	m.logger.Info("offline data loaded",
		"registrations", len(data.Registrations),
		"meal_scans", len(data.MealScans),
		"pending", data.PendingSync)
	return data
}

// StoreOfflineRegistration records the registration locally and returns its id.
// No network call is made.
func (m *Manager) StoreOfflineRegistration(ctx context.Context, eventID string, participant offline.ParticipantData, payment *offline.PaymentData) string {
	id := m.ids.NewID(offline.RegistrationIDPrefix)
	reg := offline.NewRegistration(id, m.clock.Now(), eventID, participant, payment)

	m.mu.Lock()
	m.data.AddRegistration(reg)
	m.mu.Unlock()

	m.logger.Info("offline registration stored", "id", id, "event_id", eventID)
	m.persist(ctx)
	return id
}

func (m *Manager) StoreOfflineMealScan(ctx context.Context, qrCode, mealSession, scannerID, scannerUserID string, result offline.ScanResult) string {
	id := m.ids.NewID(offline.MealScanIDPrefix)
	scan := offline.NewMealScan(id, m.clock.Now(), qrCode, mealSession, scannerID, scannerUserID, result)

	m.mu.Lock()
	m.data.AddMealScan(scan)
	m.mu.Unlock()

	m.logger.Info("offline meal scan stored", "id", id, "meal_session", mealSession)
	m.persist(ctx)
	return id
}

func (m *Manager) GetOfflineStats() Stats {
	online := m.network.IsOnline()

	m.mu.Lock()
	defer m.mu.Unlock()

	regs := len(m.data.PendingRegistrations())
	scans := len(m.data.PendingMealScans())
	exhausted := 0
	for _, r := range m.data.Registrations {
		if r.Exhausted(m.opts.MaxRetries) {
			exhausted++
		}
	}
	for _, s := range m.data.MealScans {
		if s.Exhausted(m.opts.MaxRetries) {
			exhausted++
		}
	}

	return Stats{
		IsOnline:             online,
		PendingRegistrations: regs,
		PendingScans:         scans,
		TotalPending:         regs + scans,
		ExhaustedRecords:     exhausted,
		LastSync:             m.data.LastSync,
		SyncInProgress:       m.syncing,
	}
}

// GetPendingRegistrations includes records past the retry ceiling.
func (m *Manager) GetPendingRegistrations() []offline.Registration {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := m.data.PendingRegistrations()
	out := make([]offline.Registration, 0, len(pending))
	for _, r := range pending {
		out = append(out, r.Clone())
	}
	return out
}

func (m *Manager) GetPendingMealScans() []offline.MealScan {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := m.data.PendingMealScans()
	out := make([]offline.MealScan, 0, len(pending))
	for _, s := range pending {
		out = append(out, s.Clone())
	}
	return out
}

// PendingSync exposes the aggregate counter.
func (m *Manager) PendingSync() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.PendingSync
}

func (m *Manager) MaxRetries() int {
	return m.opts.MaxRetries
}

// ClearSyncedData removes synced records only; pending ones are untouched.
func (m *Manager) ClearSyncedData(ctx context.Context) int {
	m.mu.Lock()
	removed := m.data.RemoveSynced()
	m.mu.Unlock()

	m.logger.Info("synced offline data cleared", "removed", removed)
	m.persist(ctx)
	return removed
}

// ResetSyncAttempts makes capped-out records eligible again. With no ids every
// exhausted record is reset; otherwise only the named pending records are.
func (m *Manager) ResetSyncAttempts(ctx context.Context, ids ...string) int {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	match := func(id string, st *offline.SyncState) bool {
		if st.Synced {
			return false
		}
		if len(wanted) == 0 {
			return st.Exhausted(m.opts.MaxRetries)
		}
		_, ok := wanted[id]
		return ok
	}

	m.mu.Lock()
	reset := 0
	for _, r := range m.data.Registrations {
		if match(r.ID, &r.SyncState) {
			r.ResetAttempts()
			reset++
		}
	}
	for _, s := range m.data.MealScans {
		if match(s.ID, &s.SyncState) {
			s.ResetAttempts()
			reset++
		}
	}
	m.mu.Unlock()

	if reset > 0 {
		m.logger.Info("sync attempts reset", "records", reset)
		m.persist(ctx)
	}
	return reset
}

func (m *Manager) ExportOfflineData() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return "", errs.Wrap(err, "failed to export offline data")
	}
	return string(raw), nil
}

// ImportOfflineData replaces the aggregate with the given document. Nothing
// changes, in memory or in the store, unless the document parses and is
// written successfully.
func (m *Manager) ImportOfflineData(ctx context.Context, raw string) error {
	data, err := offline.UnmarshalData([]byte(raw))
	if err != nil {
		return errs.MarkAll(errs.Wrap(err, "failed to import offline data"), ErrInvalidImport, errs.ErrInvalidInput)
	}
	encoded, err := data.Marshal()
	if err != nil {
		return errs.MarkAll(errs.Wrap(err, "failed to encode imported data"), ErrInvalidImport, errs.ErrInvalidInput)
	}

	m.persistMu.Lock()
	defer m.persistMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.syncing {
		return errs.Mark(ErrSyncInProgress, errs.ErrConflict)
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	if err := m.store.Set(writeCtx, m.opts.StorageKey, string(encoded)); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to store imported data"), ErrPersistFailed)
	}

	m.data = data
	m.logger.Info("offline data imported",
		"registrations", len(data.Registrations),
		"meal_scans", len(data.MealScans))
	return nil
}

// persist writes the current aggregate; failures are logged and swallowed.
func (m *Manager) persist(ctx context.Context) {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	m.mu.Lock()
	raw, err := m.data.Marshal()
	m.mu.Unlock()
	if err != nil {
		m.logger.Error("failed to encode offline data", "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	if err := m.store.Set(writeCtx, m.opts.StorageKey, string(raw)); err != nil {
		m.logger.Error("failed to persist offline data", "error", err, "bytes", len(raw))
	}
}
