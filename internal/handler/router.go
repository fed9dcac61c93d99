package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-sync-service/internal/handler/api"
	"event-sync-service/internal/handler/middleware"
	"event-sync-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offline      *api.OfflineHandler
	QRCode       *api.QRCodeHandler
	Badge        *api.BadgeHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, logger *slog.Logger) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogging(logger, "/health"))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.Static(cfg.Artifact.PublicPath, cfg.Artifact.Dir)

	limitBody := middleware.MaxBodySize(cfg.Server.MaxBodyBytes)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/offline"), []route{
			{Method: http.MethodPost, Path: "/registrations", Handler: h.Offline.StoreRegistration},
			{Method: http.MethodPost, Path: "/meal-scans", Handler: h.Offline.StoreMealScan},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Offline.Stats},
			{Method: http.MethodGet, Path: "/registrations/pending", Handler: h.Offline.PendingRegistrations},
			{Method: http.MethodGet, Path: "/meal-scans/pending", Handler: h.Offline.PendingMealScans},
			{Method: http.MethodPost, Path: "/sync", Handler: h.Offline.Sync},
			{Method: http.MethodPost, Path: "/sync/force", Handler: h.Offline.ForceSync},
			{Method: http.MethodDelete, Path: "/synced", Handler: h.Offline.ClearSynced},
			{Method: http.MethodGet, Path: "/export", Handler: h.Offline.Export},
			{Method: http.MethodPost, Path: "/import", Handler: h.Offline.Import, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/retries/reset", Handler: h.Offline.ResetRetries},
			{Method: http.MethodPut, Path: "/network", Handler: h.Offline.SetNetwork},
		})

		addRoutes(apiGroup.Group("/qr-codes"), []route{
			{Method: http.MethodPost, Path: "/generate", Handler: h.QRCode.Generate},
			{Method: http.MethodPost, Path: "/regenerate", Handler: h.QRCode.Regenerate},
			{Method: http.MethodPost, Path: "/validate", Handler: h.QRCode.Validate},
			{Method: http.MethodPost, Path: "/bulk-generate", Handler: h.QRCode.BulkGenerate},
			{Method: http.MethodPost, Path: "/format-check", Handler: h.QRCode.FormatCheck},
			{Method: http.MethodPost, Path: "/download", Handler: h.QRCode.Download, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/print", Handler: h.QRCode.Print, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/clipboard", Handler: h.QRCode.Clipboard, Mw: []gin.HandlerFunc{limitBody}},
		})

		addRoutes(apiGroup.Group("/badges"), []route{
			{Method: http.MethodPost, Path: "/download", Handler: h.Badge.Download, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/print", Handler: h.Badge.Print, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/preview", Handler: h.Badge.Preview, Mw: []gin.HandlerFunc{limitBody}},
			{Method: http.MethodPost, Path: "/generate/download", Handler: h.Badge.GenerateAndDownload},
			{Method: http.MethodPost, Path: "/generate/print", Handler: h.Badge.GenerateAndPrint},
			{Method: http.MethodPost, Path: "/generate/pdf", Handler: h.Badge.GeneratePDF},
			{Method: http.MethodPost, Path: "/regenerate", Handler: h.Badge.Regenerate},
			{Method: http.MethodPost, Path: "/bulk/download", Handler: h.Badge.BulkDownload},
			{Method: http.MethodPost, Path: "/validate", Handler: h.Badge.Validate},
			{Method: http.MethodGet, Path: "/filename", Handler: h.Badge.Filename},
			{Method: http.MethodGet, Path: "/category-color", Handler: h.Badge.CategoryColor},
		})

		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			{Method: http.MethodGet, Path: "/ws", Handler: h.Notification.Stream},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
