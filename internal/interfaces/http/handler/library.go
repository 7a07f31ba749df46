package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prodsheet/backend/internal/application/library"
)

// MaterialHandler serves one swatch library. Two instances are mounted,
// at /leather-library and /finish-library.
type MaterialHandler struct {
	BaseHandler
	materials *library.MaterialService
	prefix    string
}

// NewMaterialHandler creates a handler for one swatch library
func NewMaterialHandler(materials *library.MaterialService, prefix string) *MaterialHandler {
	return &MaterialHandler{materials: materials, prefix: prefix}
}

// RegisterRoutes registers the library routes on the API group
func (h *MaterialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(h.prefix)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// List returns all swatches
func (h *MaterialHandler) List(c *gin.Context) {
	items, err := h.materials.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns one swatch
func (h *MaterialHandler) Get(c *gin.Context) {
	item, err := h.materials.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create adds a swatch
func (h *MaterialHandler) Create(c *gin.Context) {
	var req library.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	item, err := h.materials.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update merge-patches a swatch
func (h *MaterialHandler) Update(c *gin.Context) {
	var req library.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	item, err := h.materials.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes a swatch
func (h *MaterialHandler) Delete(c *gin.Context) {
	if err := h.materials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Item deleted"})
}
