package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bolsillo/internal/errors"
	"bolsillo/internal/receipt"
)

// ReceiptHandler handles receipt scanning requests.
type ReceiptHandler struct {
	extractor receipt.Extractor
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(extractor receipt.Extractor) *ReceiptHandler {
	return &ReceiptHandler{extractor: extractor}
}

// ScanReceipt handles receipt image uploads
// @Summary     Scan a receipt
// @Description Extract a best-effort transaction prefill from a receipt image
// @Tags        receipts
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Receipt image"
// @Success     200 {object} receipt.Extraction "Extracted fields"
// @Failure     400 {object} ErrorResponse "No image provided"
// @Failure     502 {object} ErrorResponse "Extraction failed"
// @Router      /receipts/scan [post]
func (h *ReceiptHandler) ScanReceipt(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondWithError(c, apperrors.ErrNoImage)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	extraction, err := h.extractor.Extract(c.Request.Context(), image, mimeType)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrExtractionFailed, err))
		return
	}

	c.JSON(http.StatusOK, extraction)
}
