package api

import (
	"net/http"

	reqdto "event-sync-service/internal/handler/dto/request"
	resdto "event-sync-service/internal/handler/dto/response"
	"event-sync-service/internal/handler/httperr"
	"event-sync-service/internal/usecase/artifact"

	"github.com/gin-gonic/gin"
)

type QRCodeHandler struct {
	svc artifact.Service
}

func NewQRCodeHandler(svc artifact.Service) *QRCodeHandler {
	return &QRCodeHandler{svc: svc}
}

// @Summary Generate QR code
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrationIDRequest true "Registration"
// @Success 200 {object} badge.QRCodeResult
// @Failure 502 {object} httperr.Response
// @Router /api/qr-codes/generate [post]
func (h *QRCodeHandler) Generate(c *gin.Context) {
	var req reqdto.RegistrationIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.Generate(c.Request.Context(), req.RegistrationID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to generate QR code")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Regenerate QR code
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrationIDRequest true "Registration"
// @Success 200 {object} badge.QRCodeResult
// @Failure 502 {object} httperr.Response
// @Router /api/qr-codes/regenerate [post]
func (h *QRCodeHandler) Regenerate(c *gin.Context) {
	var req reqdto.RegistrationIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.Regenerate(c.Request.Context(), req.RegistrationID)
	if err != nil {
		abortWithMappedError(c, err, "Failed to regenerate QR code")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Validate QR code with the server
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.QRCodeRequest true "QR code"
// @Success 200 {object} badge.QRCodeValidationResult
// @Failure 502 {object} httperr.Response
// @Router /api/qr-codes/validate [post]
func (h *QRCodeHandler) Validate(c *gin.Context) {
	var req reqdto.QRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.Validate(c.Request.Context(), req.QRCode)
	if err != nil {
		abortWithMappedError(c, err, "Failed to validate QR code")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Generate QR codes in bulk
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.BulkRegistrationsRequest true "Registrations"
// @Success 200 {array} badge.QRCodeResult
// @Failure 502 {object} httperr.Response
// @Router /api/qr-codes/bulk-generate [post]
func (h *QRCodeHandler) BulkGenerate(c *gin.Context) {
	var req reqdto.BulkRegistrationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.BulkGenerate(c.Request.Context(), req.RegistrationIDs)
	if err != nil {
		abortWithMappedError(c, err, "Failed to generate QR codes")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check QR code format
// @Description Syntactic hex:hex check, no server call
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.QRCodeRequest true "QR code"
// @Success 200 {object} resdto.FormatCheckResponse
// @Router /api/qr-codes/format-check [post]
func (h *QRCodeHandler) FormatCheck(c *gin.Context) {
	var req reqdto.QRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FormatCheckResponse{QRCode: req.QRCode, Valid: h.svc.IsValidQRCodeFormat(req.QRCode)})
}

// @Summary Download QR code image
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.QRImageRequest true "Image"
// @Success 200 {object} resdto.ArtifactResponse
// @Router /api/qr-codes/download [post]
func (h *QRCodeHandler) Download(c *gin.Context) {
	var req reqdto.QRImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	art, err := h.svc.DownloadQRCode(c.Request.Context(), req.Base64Image, req.ParticipantName)
	if err != nil {
		abortWithMappedError(c, err, "Failed to download QR code")
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtifact(art))
}

// @Summary Print QR code
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.QRImageRequest true "Image"
// @Success 200 {object} resdto.ArtifactResponse
// @Router /api/qr-codes/print [post]
func (h *QRCodeHandler) Print(c *gin.Context) {
	var req reqdto.QRImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	art, err := h.svc.PrintQRCode(c.Request.Context(), req.Base64Image, req.ParticipantName)
	if err != nil {
		abortWithMappedError(c, err, "Failed to print QR code")
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtifact(art))
}

// @Summary Copy QR code to clipboard
// @Tags qr-codes
// @Accept json
// @Produce json
// @Param request body reqdto.ClipboardRequest true "Image"
// @Success 200 {object} resdto.MessageResponse
// @Failure 501 {object} httperr.Response
// @Router /api/qr-codes/clipboard [post]
func (h *QRCodeHandler) Clipboard(c *gin.Context) {
	var req reqdto.ClipboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.svc.CopyQRCodeToClipboard(c.Request.Context(), req.Base64Image); err != nil {
		abortWithMappedError(c, err, "Failed to copy QR code")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "QR code copied to clipboard"})
}
