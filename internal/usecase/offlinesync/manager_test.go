//go:build unit

package offlinesync_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"event-sync-service/internal/domain/offline"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/offlinesync"
	"event-sync-service/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type ManagerTestSuite struct {
	suite.Suite
	ctx context.Context
	f   *fixture
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.f = newFixture(offlinesync.Options{StorageKey: "offline_test", MaxRetries: 3})
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) storeRegistrations(n int) []string {
	ids := make([]string, 0, n)
	for i := range n {
		ids = append(ids, s.f.manager.StoreOfflineRegistration(s.ctx, "evt-1", participant(fmt.Sprintf("p%d", i)), nil))
	}
	return ids
}

// ================================================================================
// Store
// ================================================================================

func (s *ManagerTestSuite) TestStore() {
	s.Run("pending counter equals records stored", func() {
		ids := s.storeRegistrations(3)
		scanID := s.f.manager.StoreOfflineMealScan(s.ctx, "aa:bb", "lunch", "scanner-1", "staff-1", okScan())

		s.Equal([]string{"offline_reg_1", "offline_reg_2", "offline_reg_3"}, ids)
		s.Equal("offline_scan_4", scanID)
		s.Equal(4, s.f.manager.PendingSync())

		stats := s.f.manager.GetOfflineStats()
		s.Equal(3, stats.PendingRegistrations)
		s.Equal(1, stats.PendingScans)
		s.Equal(4, stats.TotalPending)
		s.True(stats.IsOnline)
		s.False(stats.SyncInProgress)
	})

	s.Run("stored registration carries the placeholder qr code and utc time", func() {
		regs := s.f.manager.GetPendingRegistrations()
		s.Require().NotEmpty(regs)
		s.Equal(offline.PlaceholderQRPrefix+regs[0].ID, regs[0].QRCode)
		s.Equal(time.UTC, regs[0].Timestamp.Location())
		s.Zero(regs[0].SyncAttempts)
	})

	s.Run("store makes no remote call", func() {
		s.Zero(s.f.remote.total())
	})
}

func (s *ManagerTestSuite) TestPersistedStateSurvivesRestart() {
	payment := &offline.PaymentData{ReceiptNumber: "R-9", Amount: 55.5, Status: offline.PaymentApproved}
	s.f.manager.StoreOfflineRegistration(s.ctx, "evt-2", participant("ada"), payment)
	s.f.manager.StoreOfflineMealScan(s.ctx, "aa:bb", "dinner", "scanner-2", "staff-2", okScan())

	restarted := s.f.newManager(offlinesync.Options{StorageKey: "offline_test"})

	if diff := cmp.Diff(s.f.manager.GetPendingRegistrations(), restarted.GetPendingRegistrations()); diff != "" {
		s.Failf("registrations differ after restart", "(-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(s.f.manager.GetPendingMealScans(), restarted.GetPendingMealScans()); diff != "" {
		s.Failf("meal scans differ after restart", "(-before +after):\n%s", diff)
	}
	s.Equal(2, restarted.PendingSync())
}

func (s *ManagerTestSuite) TestLoadFallsBackToEmpty() {
	s.Run("corrupt entry", func() {
		s.Require().NoError(s.f.store.Set(s.ctx, "offline_test", "{not json"))
		m := s.f.newManager(offlinesync.Options{StorageKey: "offline_test"})
		s.Zero(m.PendingSync())
		s.Empty(m.GetPendingRegistrations())
	})

	s.Run("missing entry", func() {
		m := s.f.newManager(offlinesync.Options{StorageKey: "never_written"})
		s.Zero(m.PendingSync())
	})
}

func (s *ManagerTestSuite) TestPersistFailureIsTolerated() {
	s.f.store.failSet.Store(true)

	id := s.f.manager.StoreOfflineRegistration(s.ctx, "evt-1", participant("ada"), nil)

	s.NotEmpty(id)
	s.Equal(1, s.f.manager.PendingSync())
	s.Len(s.f.manager.GetPendingRegistrations(), 1)
}

func (s *ManagerTestSuite) TestPendingSnapshotsAreCopies() {
	s.storeRegistrations(1)
	regs := s.f.manager.GetPendingRegistrations()
	regs[0].Synced = true
	regs[0].EventID = "mutated"

	again := s.f.manager.GetPendingRegistrations()
	s.Require().Len(again, 1)
	s.Equal("evt-1", again[0].EventID)
}

// ================================================================================
// Sync
// ================================================================================

func (s *ManagerTestSuite) TestSyncSuccess() {
	s.storeRegistrations(2)
	s.f.manager.StoreOfflineMealScan(s.ctx, "aa:bb", "lunch", "scanner-1", "staff-1", okScan())
	s.f.clock.Add(time.Minute)

	result := s.f.manager.SyncOfflineData(s.ctx)

	s.True(result.Success)
	s.Equal(2, result.SyncedRegistrations)
	s.Equal(1, result.SyncedScans)
	s.Empty(result.Errors)
	s.Zero(s.f.manager.PendingSync())
	s.Empty(s.f.manager.GetPendingRegistrations())

	stats := s.f.manager.GetOfflineStats()
	s.Equal(testNow.Add(time.Minute), stats.LastSync)
	s.Equal([]string{shared.EventSyncStarted, shared.EventSyncCompleted}, s.f.events.types())

	restarted := s.f.newManager(offlinesync.Options{StorageKey: "offline_test"})
	s.Zero(restarted.PendingSync(), "sync outcome must be persisted")
}

func (s *ManagerTestSuite) TestSyncReplacesPlaceholderQRCode() {
	ids := s.storeRegistrations(3)
	s.f.remote.regFail = func(r offline.Registration) error {
		if r.ID == ids[1] {
			return errRemote
		}
		return nil
	}
	s.f.remote.issueQR = func(r offline.Registration) string {
		if r.ID == ids[2] {
			return ""
		}
		return "a1b2:" + r.ID
	}

	s.f.manager.SyncOfflineData(s.ctx)

	raw, err := s.f.manager.ExportOfflineData()
	s.Require().NoError(err)
	data, err := offline.UnmarshalData([]byte(raw))
	s.Require().NoError(err)
	s.Require().Len(data.Registrations, 3)
	s.Equal("a1b2:"+ids[0], data.Registrations[0].QRCode)
	s.Equal(offline.PlaceholderQRPrefix+ids[1], data.Registrations[1].QRCode, "failed sync keeps the placeholder")
	s.Equal(offline.PlaceholderQRPrefix+ids[2], data.Registrations[2].QRCode, "no issued code keeps the placeholder")

	restarted := s.f.newManager(offlinesync.Options{StorageKey: "offline_test"})
	exported, err := restarted.ExportOfflineData()
	s.Require().NoError(err)
	s.Contains(exported, "a1b2:"+ids[0])
}

func (s *ManagerTestSuite) TestSyncOrder() {
	s.f.manager.StoreOfflineMealScan(s.ctx, "aa:bb", "lunch", "scanner-1", "staff-1", okScan())
	ids := s.storeRegistrations(3)

	s.f.manager.SyncOfflineData(s.ctx)

	s.Equal(append(ids, "offline_scan_1"), s.f.remote.callOrder(),
		"registrations go first, each collection in insertion order")
}

func (s *ManagerTestSuite) TestSyncPartialFailure() {
	ids := s.storeRegistrations(3)
	s.f.remote.regFail = func(r offline.Registration) error {
		if r.ID == ids[1] {
			return errRemote
		}
		return nil
	}

	result := s.f.manager.SyncOfflineData(s.ctx)

	s.False(result.Success)
	s.Equal(2, result.SyncedRegistrations)
	s.Equal([]string{"Registration " + ids[1] + ": boom"}, result.Errors)
	s.Equal(1, s.f.manager.PendingSync())

	pending := s.f.manager.GetPendingRegistrations()
	s.Require().Len(pending, 1)
	s.Equal(ids[1], pending[0].ID)
	s.Equal(1, pending[0].SyncAttempts)
	s.Equal("boom", pending[0].SyncError)
	s.Require().NotNil(pending[0].LastSyncAttempt)
	s.Equal(testNow, *pending[0].LastSyncAttempt)
}

func (s *ManagerTestSuite) TestRetryCeiling() {
	id := s.storeRegistrations(1)[0]
	s.f.remote.regFail = func(offline.Registration) error { return errRemote }

	for pass := 1; pass <= 3; pass++ {
		result := s.f.manager.SyncOfflineData(s.ctx)
		s.False(result.Success, "pass %d", pass)
		s.Equal(pass, s.f.remote.callsFor(id))
	}

	fourth := s.f.manager.SyncOfflineData(s.ctx)
	s.True(fourth.Success, "nothing left to try")
	s.Equal(3, s.f.remote.callsFor(id), "exhausted record must not be retried")

	stats := s.f.manager.GetOfflineStats()
	s.Equal(1, stats.TotalPending, "exhausted records stay pending")
	s.Equal(1, stats.ExhaustedRecords)
	s.Len(s.f.manager.GetPendingRegistrations(), 1)
}

func (s *ManagerTestSuite) TestResetSyncAttempts() {
	ids := s.storeRegistrations(2)
	s.f.remote.regFail = func(offline.Registration) error { return errRemote }
	for range 3 {
		s.f.manager.SyncOfflineData(s.ctx)
	}
	s.Equal(2, s.f.manager.GetOfflineStats().ExhaustedRecords)

	s.Run("named ids only", func() {
		s.Equal(1, s.f.manager.ResetSyncAttempts(s.ctx, ids[0], "unknown"))
		s.Equal(1, s.f.manager.GetOfflineStats().ExhaustedRecords)
	})

	s.Run("no ids resets every exhausted record", func() {
		s.Equal(1, s.f.manager.ResetSyncAttempts(s.ctx))
		s.Zero(s.f.manager.ResetSyncAttempts(s.ctx))
	})

	s.Run("reset records sync again", func() {
		s.f.remote.regFail = nil
		result := s.f.manager.SyncOfflineData(s.ctx)
		s.True(result.Success)
		s.Equal(2, result.SyncedRegistrations)
		s.Equal(4, s.f.remote.callsFor(ids[0]))
	})
}

func (s *ManagerTestSuite) TestRemotePanicIsContained() {
	ids := s.storeRegistrations(2)
	s.f.remote.regFail = func(r offline.Registration) error {
		if r.ID == ids[0] {
			panic("nil map")
		}
		return nil
	}

	result := s.f.manager.SyncOfflineData(s.ctx)

	s.Equal(1, result.SyncedRegistrations)
	s.Require().Len(result.Errors, 1)
	s.True(strings.HasPrefix(result.Errors[0], "Registration "+ids[0]+": "))
	s.Contains(result.Errors[0], "nil map")
	s.False(s.f.manager.SyncInProgress())
}

func (s *ManagerTestSuite) TestOffline() {
	s.storeRegistrations(1)
	s.f.network.set(false)

	s.Run("sync reports offline without calling the remote", func() {
		result := s.f.manager.SyncOfflineData(s.ctx)
		s.False(result.Success)
		s.Equal([]string{offlinesync.ErrOffline.Error()}, result.Errors)
		s.Zero(s.f.remote.total())
		s.Equal(1, s.f.manager.PendingSync())
	})

	s.Run("force sync fails", func() {
		result, err := s.f.manager.ForceSyncNow(s.ctx)
		s.Require().Error(err)
		s.True(errs.Is(err, offlinesync.ErrOffline))
		s.True(errs.Is(err, errs.ErrUnavailable))
		s.False(result.Success)
		s.Zero(s.f.remote.total())
	})

	s.Run("stats still work", func() {
		stats := s.f.manager.GetOfflineStats()
		s.False(stats.IsOnline)
		s.Equal(1, stats.TotalPending)
	})
}

func (s *ManagerTestSuite) TestSingleFlight() {
	s.storeRegistrations(1)
	s.f.remote.block = make(chan struct{})
	s.f.remote.entered = make(chan struct{}, 1)

	var (
		wg    sync.WaitGroup
		first offlinesync.SyncResult
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = s.f.manager.SyncOfflineData(s.ctx)
	}()
	<-s.f.remote.entered

	s.True(s.f.manager.SyncInProgress())
	s.True(s.f.manager.GetOfflineStats().SyncInProgress)

	second := s.f.manager.SyncOfflineData(s.ctx)
	s.False(second.Success)
	s.Equal([]string{offlinesync.ErrSyncInProgress.Error()}, second.Errors)

	forced, err := s.f.manager.ForceSyncNow(s.ctx)
	s.NoError(err)
	s.False(forced.Success)

	err = s.f.manager.ImportOfflineData(s.ctx, `{"registrations":[],"mealScans":[]}`)
	s.True(errs.Is(err, offlinesync.ErrSyncInProgress))

	close(s.f.remote.block)
	wg.Wait()

	s.True(first.Success)
	s.Equal(1, s.f.remote.total(), "only the first pass reached the remote")
	s.False(s.f.manager.SyncInProgress())
}

func (s *ManagerTestSuite) TestForceSyncNow() {
	s.storeRegistrations(2)

	result, err := s.f.manager.ForceSyncNow(s.ctx)

	s.NoError(err)
	s.True(result.Success)
	s.Equal(2, result.SyncedRegistrations)
}

// ================================================================================
// Clear / export / import
// ================================================================================

func (s *ManagerTestSuite) TestClearSyncedData() {
	ids := s.storeRegistrations(3)
	s.f.remote.regFail = func(r offline.Registration) error {
		if r.ID == ids[2] {
			return errRemote
		}
		return nil
	}
	s.f.manager.SyncOfflineData(s.ctx)

	s.Equal(2, s.f.manager.ClearSyncedData(s.ctx))
	s.Zero(s.f.manager.ClearSyncedData(s.ctx), "clearing twice removes nothing")

	pending := s.f.manager.GetPendingRegistrations()
	s.Require().Len(pending, 1)
	s.Equal(ids[2], pending[0].ID)
	s.Equal(1, s.f.manager.PendingSync())
}

func (s *ManagerTestSuite) TestExportImportRoundTrip() {
	s.storeRegistrations(2)
	s.f.manager.StoreOfflineMealScan(s.ctx, "aa:bb", "lunch", "scanner-1", "staff-1", okScan())

	doc, err := s.f.manager.ExportOfflineData()
	s.Require().NoError(err)
	s.Contains(doc, "\n  \"registrations\"", "export is indented")

	other := newFixture(offlinesync.Options{})
	s.Require().NoError(other.manager.ImportOfflineData(s.ctx, doc))

	if diff := cmp.Diff(s.f.manager.GetPendingRegistrations(), other.manager.GetPendingRegistrations()); diff != "" {
		s.Failf("imported registrations differ", "(-exported +imported):\n%s", diff)
	}
	s.Equal(3, other.manager.PendingSync())

	again, err := other.manager.ExportOfflineData()
	s.Require().NoError(err)
	s.JSONEq(doc, again)
}

func (s *ManagerTestSuite) TestImportIsAllOrNothing() {
	s.storeRegistrations(2)
	before, err := s.f.manager.ExportOfflineData()
	s.Require().NoError(err)

	s.Run("malformed document", func() {
		err := s.f.manager.ImportOfflineData(s.ctx, `{"registrations": [`)
		s.True(errs.Is(err, offlinesync.ErrInvalidImport))
		s.True(errs.Is(err, errs.ErrInvalidInput))
	})

	s.Run("duplicate ids", func() {
		err := s.f.manager.ImportOfflineData(s.ctx, `{"registrations":[{"id":"a"},{"id":"a"}]}`)
		s.True(errs.Is(err, offlinesync.ErrInvalidImport))
	})

	s.Run("store write fails", func() {
		s.f.store.failSet.Store(true)
		defer s.f.store.failSet.Store(false)

		err := s.f.manager.ImportOfflineData(s.ctx, `{"registrations":[],"mealScans":[]}`)
		s.True(errs.Is(err, offlinesync.ErrPersistFailed))
	})

	after, err := s.f.manager.ExportOfflineData()
	s.Require().NoError(err)
	s.Equal(before, after)

	restarted := s.f.newManager(offlinesync.Options{StorageKey: "offline_test"})
	s.Equal(2, restarted.PendingSync())
}

func (s *ManagerTestSuite) TestImportRecomputesPending() {
	doc := `{
		"registrations": [
			{"id": "r1", "eventId": "e", "synced": true},
			{"id": "r2", "eventId": "e", "synced": false, "syncAttempts": 3}
		],
		"mealScans": [{"id": "s1", "synced": false}],
		"lastSync": "2024-03-14T10:00:00Z",
		"pendingSync": 99
	}`
	s.Require().NoError(s.f.manager.ImportOfflineData(s.ctx, doc))

	s.Equal(2, s.f.manager.PendingSync())
	stats := s.f.manager.GetOfflineStats()
	s.Equal(1, stats.ExhaustedRecords)
	s.Equal(time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC), stats.LastSync.UTC())
}

func (s *ManagerTestSuite) TestScenarioOfflineThenOnline() {
	s.f.network.set(false)
	regID := s.f.manager.StoreOfflineRegistration(s.ctx, "evt-1", participant("ada"), nil)
	scanID := s.f.manager.StoreOfflineMealScan(s.ctx, "aa:bb", "lunch", "scanner-1", "staff-1", okScan())
	s.Equal(2, s.f.manager.GetOfflineStats().TotalPending)

	s.f.network.set(true)
	s.f.remote.scanFail = func(offline.MealScan) error { return errRemote }

	result := s.f.manager.SyncOfflineData(s.ctx)
	s.False(result.Success)
	s.Equal(1, result.SyncedRegistrations)
	s.Equal([]string{"Meal scan " + scanID + ": boom"}, result.Errors)

	s.f.remote.scanFail = nil
	result = s.f.manager.SyncOfflineData(s.ctx)
	s.True(result.Success)
	s.Equal(1, result.SyncedScans)
	s.Equal(1, s.f.remote.callsFor(regID), "synced records are not resent")

	s.Equal(2, s.f.manager.ClearSyncedData(s.ctx))
	s.Zero(s.f.manager.GetOfflineStats().TotalPending)
}
