package handler

import (
	"net/http"

	cvDto "anoa.com/lebenslauf/internal/modules/cv/dto"
	cv "anoa.com/lebenslauf/internal/modules/cv/service"
	"anoa.com/lebenslauf/pkg/response"
	"anoa.com/lebenslauf/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CvHandler struct {
	cvService cv.CvService
	log       *zap.Logger
}

func NewCvHandler(cvService cv.CvService, log *zap.Logger) *CvHandler {
	return &CvHandler{
		cvService: cvService,
		log:       log,
	}
}

// BindCvRequest reads the profile slug from the path, falling back to ?profile=.
func BindCvRequest(c *gin.Context) (cvDto.CvRequest, error) {
	var req cvDto.CvRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if slug := c.Param("profileSlug"); slug != "" {
		if err := c.ShouldBindUri(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (h *CvHandler) GetCv(c *gin.Context) {
	req, err := BindCvRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.cvService.GetCv(c.Request.Context(), req.ProfileSlug)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *CvHandler) GetProfiles(c *gin.Context) {
	res, err := h.cvService.GetProfiles(c.Request.Context())
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
