package offlinesync

import (
	"context"
	"fmt"
	"time"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/shared"
)

var errRemotePanic = errs.New("remote call panicked")

// SyncOfflineData runs one sync pass. Being offline or already syncing is an
// expected condition reported through the result, never as an error.
func (m *Manager) SyncOfflineData(ctx context.Context) SyncResult {
	if !m.network.IsOnline() {
		return rejected(ErrOffline)
	}
	if !m.tryBeginSync() {
		return rejected(ErrSyncInProgress)
	}
	return m.runPass(ctx)
}

// ForceSyncNow is a user-demanded pass: being offline is an error here.
func (m *Manager) ForceSyncNow(ctx context.Context) (SyncResult, error) {
	if !m.network.IsOnline() {
		return rejected(ErrOffline), errs.Mark(ErrOffline, errs.ErrUnavailable)
	}
	if !m.tryBeginSync() {
		return rejected(ErrSyncInProgress), nil
	}
	return m.runPass(ctx), nil
}

func (m *Manager) SyncInProgress() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncing
}

func (m *Manager) tryBeginSync() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.syncing {
		return false
	}
	m.syncing = true
	return true
}

// runPass owns the single-flight flag until it returns. The pass is detached
// from the caller's cancellation and always runs over its whole candidate set.
func (m *Manager) runPass(ctx context.Context) SyncResult {
	ctx = context.WithoutCancel(ctx)
	started := m.clock.Now()

	m.mu.Lock()
	regs := m.data.EligibleRegistrations(m.opts.MaxRetries)
	scans := m.data.EligibleMealScans(m.opts.MaxRetries)
	m.mu.Unlock()

	m.logger.Info("sync pass started", "registrations", len(regs), "meal_scans", len(scans))
	m.events.Publish(shared.Event{
		Type:      shared.EventSyncStarted,
		Data:      map[string]any{"registrations": len(regs), "mealScans": len(scans)},
		Timestamp: started,
	})

	result := SyncResult{Errors: []string{}}

	for _, reg := range regs {
		m.mu.Lock()
		snapshot := reg.Clone()
		m.mu.Unlock()

		var qrCode string
		err := m.callRemote(func() (err error) {
			qrCode, err = m.regs.CreateRegistration(ctx, snapshot)
			return err
		})
		if m.settle(&reg.SyncState, err) {
			if qrCode != "" {
				m.mu.Lock()
				reg.QRCode = qrCode
				m.mu.Unlock()
			}
			result.SyncedRegistrations++
			continue
		}
		result.Errors = append(result.Errors, formatSyncError(offline.KindRegistration, reg.ID, err))
	}

	for _, scan := range scans {
		m.mu.Lock()
		snapshot := scan.Clone()
		m.mu.Unlock()

		err := m.callRemote(func() error { return m.scans.CreateMealAttendance(ctx, snapshot) })
		if m.settle(&scan.SyncState, err) {
			result.SyncedScans++
			continue
		}
		result.Errors = append(result.Errors, formatSyncError(offline.KindMealScan, scan.ID, err))
	}

	m.mu.Lock()
	m.data.LastSync = m.clock.Now().UTC()
	m.data.PendingSync = m.data.CountPending()
	pending := m.data.PendingSync
	m.mu.Unlock()

	m.persist(ctx)

	m.mu.Lock()
	m.syncing = false
	m.mu.Unlock()

	result.Success = len(result.Errors) == 0
	m.logger.Info("sync pass completed",
		"synced_registrations", result.SyncedRegistrations,
		"synced_scans", result.SyncedScans,
		"errors", len(result.Errors),
		"pending", pending,
		"duration", time.Since(started))
	m.events.Publish(shared.Event{
		Type: shared.EventSyncCompleted,
		Data: map[string]any{
			"success":             result.Success,
			"syncedRegistrations": result.SyncedRegistrations,
			"syncedScans":         result.SyncedScans,
			"errors":              len(result.Errors),
			"pending":             pending,
		},
		Timestamp: m.clock.Now(),
	})
	return result
}

// settle records the outcome of one remote call on the stored record.
func (m *Manager) settle(state *offline.SyncState, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		if !state.Synced {
			state.MarkSynced()
			m.data.PendingSync--
		}
		return true
	}
	state.MarkFailed(m.clock.Now().UTC(), err.Error())
	return false
}

func (m *Manager) callRemote(call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Wrapf(errRemotePanic, "%v", r)
		}
	}()
	return call()
}

func formatSyncError(kind offline.Kind, id string, err error) string {
	return fmt.Sprintf("%s %s: %v", kind, id, err)
}
