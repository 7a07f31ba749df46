package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodsheet/backend/internal/application/importing"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportHandler serves the spreadsheet upload and template endpoints
type ImportHandler struct {
	BaseHandler
	imports *importing.ImportService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(imports *importing.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// RegisterRoutes registers import routes on the API group
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import/:target", h.Upload)
	rg.GET("/import/:target/template", h.Template)
}

// Upload parses a multipart workbook upload and commits its rows
func (h *ImportHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file upload: "+err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Failed to read upload: "+err.Error())
		return
	}

	summary, err := h.imports.Import(c.Request.Context(), c.Param("target"), header.Filename, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Template streams the sample workbook for an import target
func (h *ImportHandler) Template(c *gin.Context) {
	filename, data, err := h.imports.Template(c.Param("target"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
