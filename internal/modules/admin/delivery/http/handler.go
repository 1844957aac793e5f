package handler

import (
	"net/http"

	"anoa.com/lebenslauf/internal/modules/admin/dto"
	adminService "anoa.com/lebenslauf/internal/modules/admin/service"
	commonDto "anoa.com/lebenslauf/pkg/dto"
	"anoa.com/lebenslauf/pkg/response"
	"anoa.com/lebenslauf/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService adminService.AdminService
	log          *zap.Logger
}

func NewAdminHandler(adminService adminService.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		log:          log,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.adminService.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// actingAdmin returns the admin set by the auth middleware and writes a 401
// when it is missing.
func (h *AdminHandler) actingAdmin(c *gin.Context) (uuid.UUID, bool) {
	adminID, err := response.GetAdminID(c)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return uuid.Nil, false
	}
	return adminID, true
}

func (h *AdminHandler) audit(action string, adminID uuid.UUID, fields ...zap.Field) {
	h.log.Info("admin action", append([]zap.Field{
		zap.String("action", action),
		zap.Stringer("admin_id", adminID),
	}, fields...)...)
}

func bindOverlayURI(c *gin.Context) (string, uuid.UUID, bool) {
	var uri dto.OverlayURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return "", uuid.Nil, false
	}
	return uri.Slug, uuid.MustParse(uri.EntityID), true
}

func (h *AdminHandler) UpsertSkillOverlay(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	slug, skillID, ok := bindOverlayURI(c)
	if !ok {
		return
	}

	var input dto.SkillOverlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.adminService.UpsertSkillOverlay(c.Request.Context(), slug, skillID, input)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("upsert_skill_overlay", adminID, zap.String("profile", slug), zap.Stringer("entity_id", skillID))
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) RemoveSkillOverlay(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	slug, skillID, ok := bindOverlayURI(c)
	if !ok {
		return
	}

	if err := h.adminService.RemoveSkillOverlay(c.Request.Context(), slug, skillID); err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("remove_skill_overlay", adminID, zap.String("profile", slug), zap.Stringer("entity_id", skillID))
	c.JSON(http.StatusOK, commonDto.MessageResponse{Message: "skill removed from profile"})
}

func (h *AdminHandler) UpsertProjectOverlay(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	slug, projectID, ok := bindOverlayURI(c)
	if !ok {
		return
	}

	var input dto.DescribedOverlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.adminService.UpsertProjectOverlay(c.Request.Context(), slug, projectID, input)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("upsert_project_overlay", adminID, zap.String("profile", slug), zap.Stringer("entity_id", projectID))
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) UpsertWorkExperienceOverlay(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	slug, workID, ok := bindOverlayURI(c)
	if !ok {
		return
	}

	var input dto.DescribedOverlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.adminService.UpsertWorkExperienceOverlay(c.Request.Context(), slug, workID, input)
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("upsert_work_experience_overlay", adminID, zap.String("profile", slug), zap.Stringer("entity_id", workID))
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) DeleteProject(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := h.adminService.DeleteProject(c.Request.Context(), id); err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("delete_project", adminID, zap.Stringer("project_id", id))
	c.JSON(http.StatusOK, commonDto.MessageResponse{Message: "project deleted successfully"})
}

func (h *AdminHandler) UploadProfileImage(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	res, err := h.adminService.UploadProfileImage(c.Request.Context(), c.Param("profileSlug"), &commonDto.UploadFile{
		Reader:   file,
		FileName: fileHeader.Filename,
	})
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("upload_profile_image", adminID, zap.String("profile", c.Param("profileSlug")))
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) ReindexSearch(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	res, err := h.adminService.ReindexSearch(c.Request.Context())
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("reindex_search", adminID)
	c.JSON(http.StatusAccepted, res)
}

func (h *AdminHandler) PruneOrphanedOverlays(c *gin.Context) {
	adminID, ok := h.actingAdmin(c)
	if !ok {
		return
	}

	res, err := h.adminService.PruneOrphanedOverlays(c.Request.Context())
	if err != nil {
		response.ResponseError(c, h.log, err)
		return
	}

	h.audit("prune_overlays", adminID, zap.Int64("removed", res.Total()))
	c.JSON(http.StatusOK, res)
}
