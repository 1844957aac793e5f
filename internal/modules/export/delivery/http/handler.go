package handler

import (
	"net/http"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	export "anoa.com/lebenslauf/internal/modules/export/service"
	"anoa.com/lebenslauf/pkg/response"
	"anoa.com/lebenslauf/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExportHandler struct {
	exportService export.ExportService
	log           *zap.Logger
}

func NewExportHandler(exportService export.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		log:           log,
	}
}

// Download returns a handler serving the given format for ?profile=.
func (h *ExportHandler) Download(format export.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cvDto.CvRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
			return
		}

		file, err := h.exportService.Export(c.Request.Context(), format, req.ProfileSlug)
		if err != nil {
			response.ResponseError(c, h.log, err)
			return
		}

		response.Attachment(c, file.FileName, file.ContentType, file.FileBytes)
	}
}
