package api

import (
	"net/http"
	"time"

	"event-sync-service/internal/domain/badge"
	reqdto "event-sync-service/internal/handler/dto/request"
	resdto "event-sync-service/internal/handler/dto/response"
	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/pkg/clock"
	"event-sync-service/internal/usecase/artifact"

	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	svc   artifact.Service
	clock clock.Clock
}

func NewBadgeHandler(svc artifact.Service, clk clock.Clock) *BadgeHandler {
	return &BadgeHandler{svc: svc, clock: clk}
}

func (h *BadgeHandler) filename(req reqdto.BadgePDFRequest) string {
	if req.Filename != "" {
		return req.Filename
	}
	return badge.GenerateBadgeFilename(req.ParticipantName, req.EventName, h.clock.Now().UTC())
}

type pdfAction func(svc artifact.Service, c *gin.Context, base64PDF, filename string) (*artifact.Artifact, error)

func (h *BadgeHandler) handlePDF(c *gin.Context, action pdfAction, failMsg string) {
	var req reqdto.BadgePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	art, err := action(h.svc, c, req.Base64PDF, h.filename(req))
	if err != nil {
		abortWithMappedError(c, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtifact(art))
}

// @Summary Download badge PDF
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.BadgePDFRequest true "Badge"
// @Success 200 {object} resdto.ArtifactResponse
// @Router /api/badges/download [post]
func (h *BadgeHandler) Download(c *gin.Context) {
	h.handlePDF(c, func(svc artifact.Service, c *gin.Context, pdf, name string) (*artifact.Artifact, error) {
		return svc.DownloadBadge(c.Request.Context(), pdf, name)
	}, "Failed to download badge")
}

// @Summary Print badge PDF
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.BadgePDFRequest true "Badge"
// @Success 200 {object} resdto.ArtifactResponse
// @Router /api/badges/print [post]
func (h *BadgeHandler) Print(c *gin.Context) {
	h.handlePDF(c, func(svc artifact.Service, c *gin.Context, pdf, name string) (*artifact.Artifact, error) {
		return svc.PrintBadge(c.Request.Context(), pdf, name)
	}, "Failed to print badge")
}

// @Summary Preview badge PDF
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.BadgePDFRequest true "Badge"
// @Success 200 {object} resdto.ArtifactResponse
// @Router /api/badges/preview [post]
func (h *BadgeHandler) Preview(c *gin.Context) {
	h.handlePDF(c, func(svc artifact.Service, c *gin.Context, pdf, name string) (*artifact.Artifact, error) {
		return svc.PreviewBadge(c.Request.Context(), pdf, name)
	}, "Failed to preview badge")
}

type generateAction func(svc artifact.Service, c *gin.Context, req artifact.BadgeRequest) (*artifact.Artifact, error)

func (h *BadgeHandler) handleGenerate(c *gin.Context, action generateAction, failMsg string) {
	var req reqdto.GenerateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	art, err := action(h.svc, c, req.ToUseCase())
	if err != nil {
		abortWithMappedError(c, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtifact(art))
}

// @Summary Generate and download badge
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateBadgeRequest true "Badge"
// @Success 200 {object} resdto.ArtifactResponse
// @Failure 502 {object} httperr.Response
// @Router /api/badges/generate/download [post]
func (h *BadgeHandler) GenerateAndDownload(c *gin.Context) {
	h.handleGenerate(c, func(svc artifact.Service, c *gin.Context, req artifact.BadgeRequest) (*artifact.Artifact, error) {
		return svc.GenerateAndDownloadBadge(c.Request.Context(), req)
	}, "Failed to generate badge")
}

// @Summary Generate and print badge
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateBadgeRequest true "Badge"
// @Success 200 {object} resdto.ArtifactResponse
// @Failure 502 {object} httperr.Response
// @Router /api/badges/generate/print [post]
func (h *BadgeHandler) GenerateAndPrint(c *gin.Context) {
	h.handleGenerate(c, func(svc artifact.Service, c *gin.Context, req artifact.BadgeRequest) (*artifact.Artifact, error) {
		return svc.GenerateAndPrintBadge(c.Request.Context(), req)
	}, "Failed to generate badge")
}

// @Summary Generate badge PDF
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateBadgeRequest true "Badge"
// @Success 200 {object} resdto.ArtifactResponse
// @Failure 502 {object} httperr.Response
// @Router /api/badges/generate/pdf [post]
func (h *BadgeHandler) GeneratePDF(c *gin.Context) {
	h.handleGenerate(c, func(svc artifact.Service, c *gin.Context, req artifact.BadgeRequest) (*artifact.Artifact, error) {
		return svc.GenerateAndConvertToPDF(c.Request.Context(), req)
	}, "Failed to generate badge")
}

// @Summary Regenerate badge
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateBadgeRequest true "Badge"
// @Success 200 {object} resdto.BadgePDFResponse
// @Failure 502 {object} httperr.Response
// @Router /api/badges/regenerate [post]
func (h *BadgeHandler) Regenerate(c *gin.Context) {
	var req reqdto.GenerateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	pdf, err := h.svc.RegenerateBadge(c.Request.Context(), req.ToUseCase())
	if err != nil {
		abortWithMappedError(c, err, "Failed to regenerate badge")
		return
	}
	c.JSON(http.StatusOK, resdto.BadgePDFResponse{Base64PDF: pdf})
}

// @Summary Generate and download a badge sheet
// @Tags badges
// @Accept json
// @Produce json
// @Param request body reqdto.BulkBadgeRequest true "Badges"
// @Success 200 {object} resdto.ArtifactResponse
// @Failure 502 {object} httperr.Response
// @Router /api/badges/bulk/download [post]
func (h *BadgeHandler) BulkDownload(c *gin.Context) {
	var req reqdto.BulkBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	art, err := h.svc.BulkGenerateAndDownloadBadges(c.Request.Context(), req.RegistrationIDs, req.EventName)
	if err != nil {
		abortWithMappedError(c, err, "Failed to generate badges")
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtifact(art))
}

// @Summary Check a registration can get a badge
// @Tags badges
// @Accept json
// @Produce json
// @Param request body badge.Registration true "Registration"
// @Success 200 {object} badge.ValidationResult
// @Router /api/badges/validate [post]
func (h *BadgeHandler) Validate(c *gin.Context) {
	var req badge.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, h.svc.ValidateRegistrationForBadge(req))
}

// @Summary Badge filename
// @Description Sheet filename when count is given, single badge filename otherwise
// @Tags badges
// @Produce json
// @Param participantName query string false "Participant"
// @Param eventName query string true "Event"
// @Param count query int false "Badges in the sheet"
// @Param date query string false "yyyy-mm-dd, defaults to today"
// @Success 200 {object} resdto.FilenameResponse
// @Router /api/badges/filename [get]
func (h *BadgeHandler) Filename(c *gin.Context) {
	var q reqdto.FilenameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date := h.clock.Now().UTC()
	if q.Date != "" {
		parsed, err := time.Parse(time.DateOnly, q.Date)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		date = parsed
	}

	if q.Count > 0 {
		c.JSON(http.StatusOK, resdto.FilenameResponse{Filename: badge.GenerateBadgeSheetFilename(q.EventName, q.Count, date)})
		return
	}
	c.JSON(http.StatusOK, resdto.FilenameResponse{Filename: badge.GenerateBadgeFilename(q.ParticipantName, q.EventName, date)})
}

// @Summary Category color
// @Tags badges
// @Produce json
// @Param category query string false "Category"
// @Success 200 {object} resdto.CategoryColorResponse
// @Router /api/badges/category-color [get]
func (h *BadgeHandler) CategoryColor(c *gin.Context) {
	var q reqdto.CategoryColorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CategoryColorResponse{
		Category: q.Category,
		Color:    badge.CategoryColor(q.Category),
		Palette:  badge.CategoryColors(),
	})
}
