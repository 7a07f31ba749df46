package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prodsheet/backend/internal/application/quotation"
)

// QuotationHandler serves the quotation endpoints
type QuotationHandler struct {
	BaseHandler
	quotations *quotation.QuotationService
}

// NewQuotationHandler creates a new QuotationHandler
func NewQuotationHandler(quotations *quotation.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotations: quotations}
}

// RegisterRoutes registers quotation routes on the API group
func (h *QuotationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	{
		quotations.GET("", h.List)
		quotations.POST("", h.Create)
		quotations.GET("/:id", h.Get)
		quotations.PUT("/:id", h.Update)
		quotations.DELETE("/:id", h.Delete)
		quotations.POST("/:id/duplicate", h.Duplicate)
	}
}

// List returns all quotations
func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.quotations.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quotations)
}

// Get returns one quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	q, err := h.quotations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, q)
}

// Create adds a quotation
func (h *QuotationHandler) Create(c *gin.Context) {
	var req quotation.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	q, err := h.quotations.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, q)
}

// Update merge-patches a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	var req quotation.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	q, err := h.quotations.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, q)
}

// Delete removes a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.quotations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Quotation deleted"})
}

// Duplicate deep-copies a quotation under a fresh id
func (h *QuotationHandler) Duplicate(c *gin.Context) {
	q, err := h.quotations.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, q)
}
