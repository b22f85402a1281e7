package handlers

import (
	"net/http"

	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	*BaseHandler
	classService services.ClassService
}

func NewClassHandler(base *BaseHandler, classService services.ClassService) *ClassHandler {
	return &ClassHandler{
		BaseHandler:  base,
		classService: classService,
	}
}

func (h *ClassHandler) RegisterRoutes(rg *gin.RouterGroup) {
	classes := rg.Group("/classes")
	classes.Use(middleware.AuthMiddleware())
	{
		classes.GET("", h.ListActive)
		classes.GET("/:id", h.GetByID)
		classes.POST("/:id/enroll", middleware.RequireRoles(models.UserRoleMember), h.Enroll)
		classes.GET("/:id/enrollments",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleAdmin), h.ListEnrollments)
	}

	admin := rg.Group("/classes")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Deactivate)
	}
}

func (h *ClassHandler) ListActive(c *gin.Context) {
	classes, err := h.classService.GetAllActive()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) GetByID(c *gin.Context) {
	classID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	class, err := h.classService.GetByID(classID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Enroll(c *gin.Context) {
	memberID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	classID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	enrollment, err := h.classService.Enroll(memberID, classID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func (h *ClassHandler) ListEnrollments(c *gin.Context) {
	classID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	enrollments, err := h.classService.GetEnrollments(classID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.SaveClassRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	class, err := h.classService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	classID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SaveClassRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	class, err := h.classService.Update(classID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Deactivate(c *gin.Context) {
	classID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.classService.Deactivate(classID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deactivated"})
}
