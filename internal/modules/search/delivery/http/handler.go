package handler

import (
	"net/http"

	searchDto "anoa.com/lebenslauf/internal/modules/search/dto"
	search "anoa.com/lebenslauf/internal/modules/search/service"
	"anoa.com/lebenslauf/pkg/response"
	"anoa.com/lebenslauf/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService search.ProjectSearchService
	log           *zap.Logger
}

func NewSearchHandler(searchService search.ProjectSearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		log:           log,
	}
}

func (h *SearchHandler) SearchProjects(c *gin.Context) {
	var req searchDto.SearchProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.searchService.SearchProjects(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
