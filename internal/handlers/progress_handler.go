package handlers

import (
	"net/http"

	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	*BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(base *BaseHandler, progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     base,
		progressService: progressService,
	}
}

func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	progress := rg.Group("/progress")
	progress.Use(middleware.AuthMiddleware())
	{
		progress.POST("", middleware.RequireRoles(models.UserRoleMember), h.Record)
		progress.GET("/my", middleware.RequireRoles(models.UserRoleMember), h.ListOwn)
		progress.GET("/member/:id",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleAdmin), h.ListByMember)
	}
}

func (h *ProgressHandler) Record(c *gin.Context) {
	memberID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveProgressRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.progressService.Record(memberID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ProgressHandler) ListOwn(c *gin.Context) {
	memberID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	records, err := h.progressService.GetByMemberID(memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ProgressHandler) ListByMember(c *gin.Context) {
	memberID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	records, err := h.progressService.GetByMemberID(memberID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
