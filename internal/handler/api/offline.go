package api

import (
	"net/http"
	"strconv"

	reqdto "event-sync-service/internal/handler/dto/request"
	resdto "event-sync-service/internal/handler/dto/response"
	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/offlinesync"
	"event-sync-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// NetworkOverride is the manual connectivity switch for kiosks.
type NetworkOverride interface {
	shared.NetworkController
	ResumeProbing()
	Overridden() bool
}

type OfflineHandler struct {
	svc     offlinesync.Service
	network NetworkOverride
}

func NewOfflineHandler(svc offlinesync.Service, network NetworkOverride) *OfflineHandler {
	return &OfflineHandler{svc: svc, network: network}
}

// @Summary Store offline registration
// @Description Record a registration locally; it is pushed to the server by the next sync pass
// @Tags offline
// @Accept json
// @Produce json
// @Param request body reqdto.StoreRegistrationRequest true "Registration"
// @Success 201 {object} resdto.StoredResponse
// @Failure 400 {object} httperr.Response
// @Router /api/offline/registrations [post]
func (h *OfflineHandler) StoreRegistration(c *gin.Context) {
	var req reqdto.StoreRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	participant, payment := req.ToDomain()
	id := h.svc.StoreOfflineRegistration(c.Request.Context(), req.EventID, participant, payment)
	c.JSON(http.StatusCreated, resdto.StoredResponse{ID: id})
}

// @Summary Store offline meal scan
// @Tags offline
// @Accept json
// @Produce json
// @Param request body reqdto.StoreMealScanRequest true "Meal scan"
// @Success 201 {object} resdto.StoredResponse
// @Failure 400 {object} httperr.Response
// @Router /api/offline/meal-scans [post]
func (h *OfflineHandler) StoreMealScan(c *gin.Context) {
	var req reqdto.StoreMealScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id := h.svc.StoreOfflineMealScan(c.Request.Context(), req.QRCode, req.MealSession, req.ScannerID, req.ScannerUserID, req.ToDomain())
	c.JSON(http.StatusCreated, resdto.StoredResponse{ID: id})
}

// @Summary Offline statistics
// @Tags offline
// @Produce json
// @Success 200 {object} offlinesync.Stats
// @Router /api/offline/stats [get]
func (h *OfflineHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetOfflineStats())
}

// @Summary Pending registrations
// @Description Unsynced registrations, including those no longer retried automatically
// @Tags offline
// @Produce json
// @Success 200 {array} resdto.RegistrationResponse
// @Router /api/offline/registrations/pending [get]
func (h *OfflineHandler) PendingRegistrations(c *gin.Context) {
	res, err := resdto.FromRegistrations(h.svc.GetPendingRegistrations(), h.svc.MaxRetries())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pending registrations", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Pending meal scans
// @Tags offline
// @Produce json
// @Success 200 {array} resdto.MealScanResponse
// @Router /api/offline/meal-scans/pending [get]
func (h *OfflineHandler) PendingMealScans(c *gin.Context) {
	res, err := resdto.FromMealScans(h.svc.GetPendingMealScans(), h.svc.MaxRetries())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pending meal scans", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Run a sync pass
// @Description Offline or concurrent calls return success=false with the reason
// @Tags offline
// @Produce json
// @Success 200 {object} offlinesync.SyncResult
// @Router /api/offline/sync [post]
func (h *OfflineHandler) Sync(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SyncOfflineData(c.Request.Context()))
}

// @Summary Force a sync pass
// @Description Fails with 503 when offline. resetExhausted=true first makes capped records eligible again
// @Tags offline
// @Produce json
// @Param resetExhausted query bool false "Reset exhausted records first"
// @Success 200 {object} resdto.ForceSyncResponse
// @Failure 503 {object} httperr.Response
// @Router /api/offline/sync/force [post]
func (h *OfflineHandler) ForceSync(c *gin.Context) {
	reset := 0
	if v := c.Query("resetExhausted"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resetExhausted", nil)
			return
		}
		if on {
			if !h.network.IsOnline() {
				abortWithMappedError(c, errs.Mark(offlinesync.ErrOffline, errs.ErrUnavailable), "Cannot sync while offline")
				return
			}
			reset = h.svc.ResetSyncAttempts(c.Request.Context())
		}
	}

	result, err := h.svc.ForceSyncNow(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err, "Force sync failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ForceSyncResponse{SyncResult: result, ResetRecords: reset})
}

// @Summary Clear synced records
// @Tags offline
// @Produce json
// @Success 200 {object} resdto.ClearResponse
// @Router /api/offline/synced [delete]
func (h *OfflineHandler) ClearSynced(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ClearResponse{Removed: h.svc.ClearSyncedData(c.Request.Context())})
}

// @Summary Export offline data
// @Tags offline
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/offline/export [get]
func (h *OfflineHandler) Export(c *gin.Context) {
	doc, err := h.svc.ExportOfflineData()
	if err != nil {
		abortWithMappedError(c, err, "Export failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="offline_data.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// @Summary Import offline data
// @Description Replaces all offline data with the posted export document
// @Tags offline
// @Accept json
// @Produce json
// @Success 200 {object} offlinesync.Stats
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/offline/import [post]
func (h *OfflineHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if len(raw) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("empty body"), "Invalid request", nil)
		return
	}
	if err := h.svc.ImportOfflineData(c.Request.Context(), string(raw)); err != nil {
		abortWithMappedError(c, err, "Import failed")
		return
	}
	c.JSON(http.StatusOK, h.svc.GetOfflineStats())
}

// @Summary Reset sync attempts
// @Description With no ids every exhausted record becomes eligible again
// @Tags offline
// @Accept json
// @Produce json
// @Param request body reqdto.ResetRetriesRequest false "Record ids"
// @Success 200 {object} resdto.ResetResponse
// @Router /api/offline/retries/reset [post]
func (h *OfflineHandler) ResetRetries(c *gin.Context) {
	var req reqdto.ResetRetriesRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	c.JSON(http.StatusOK, resdto.ResetResponse{Reset: h.svc.ResetSyncAttempts(c.Request.Context(), req.IDs...)})
}

// @Summary Override network state
// @Description online=true/false pins the state; online=null resumes probing
// @Tags offline
// @Accept json
// @Produce json
// @Param request body reqdto.SetNetworkRequest true "Network state"
// @Success 200 {object} resdto.NetworkResponse
// @Router /api/offline/network [put]
func (h *OfflineHandler) SetNetwork(c *gin.Context) {
	var req reqdto.SetNetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.Online == nil {
		h.network.ResumeProbing()
	} else {
		h.network.SetOnline(*req.Online)
	}
	c.JSON(http.StatusOK, resdto.NetworkResponse{Online: h.network.IsOnline(), Overridden: h.network.Overridden()})
}
