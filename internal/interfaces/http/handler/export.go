package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appprinting "github.com/prodsheet/backend/internal/application/printing"
)

const (
	pdfContentType  = "application/pdf"
	pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// ExportHandler serves the render endpoints and the export ledger
type ExportHandler struct {
	BaseHandler
	exports *appprinting.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exports *appprinting.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// RegisterRoutes registers export routes on the API group
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders/:id/export/pdf", h.ExportPDF)
	rg.GET("/orders/:id/export/ppt", h.ExportDeck)
	rg.GET("/orders/:id/preview-html", h.Preview)
	rg.GET("/exports", h.History)
	rg.GET("/exports/:orderId", h.HistoryForOrder)
}

// ExportPDF streams the rendered PDF as a download
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	filename, data, err := h.exports.ExportPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.attachment(c, filename, pdfContentType, data)
}

// ExportDeck streams the rendered slide deck as a download
func (h *ExportHandler) ExportDeck(c *gin.Context) {
	filename, data, err := h.exports.ExportDeck(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.attachment(c, filename, pptxContentType, data)
}

// Preview returns the HTML rendition alongside the order snapshot
func (h *ExportHandler) Preview(c *gin.Context) {
	html, order, err := h.exports.PreviewHTML(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"html": html, "order": order})
}

// History returns the full export ledger
func (h *ExportHandler) History(c *gin.Context) {
	records, err := h.exports.History(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// HistoryForOrder returns the ledger entries for one order
func (h *ExportHandler) HistoryForOrder(c *gin.Context) {
	records, err := h.exports.HistoryForOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

func (h *ExportHandler) attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
