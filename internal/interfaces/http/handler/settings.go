package handler

import (
	"github.com/gin-gonic/gin"

	appprinting "github.com/prodsheet/backend/internal/application/printing"
	"github.com/prodsheet/backend/internal/domain/rendering"
)

// SettingsHandler serves the singleton template settings
type SettingsHandler struct {
	BaseHandler
	settings *appprinting.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settings *appprinting.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterRoutes registers settings routes on the API group
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/template-settings", h.Get)
	rg.PUT("/template-settings", h.Update)
}

// Get returns the settings, upserting defaults on first read
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Update replaces the settings document
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings rendering.TemplateSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		h.InvalidBody(c, err)
		return
	}
	updated, err := h.settings.Update(c.Request.Context(), &settings)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}
