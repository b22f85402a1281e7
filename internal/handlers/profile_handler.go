package handlers

import (
	"net/http"

	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/member/me", middleware.RequireRoles(models.UserRoleMember), h.GetOwnMemberProfile)
		profiles.PUT("/member/me", middleware.RequireRoles(models.UserRoleMember), h.SaveOwnMemberProfile)
		profiles.GET("/trainer/me", middleware.RequireRoles(models.UserRoleTrainer), h.GetOwnTrainerProfile)
		profiles.PUT("/trainer/me", middleware.RequireRoles(models.UserRoleTrainer), h.SaveOwnTrainerProfile)

		// Trainers review the profiles of the members they coach.
		profiles.GET("/member/:id",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleAdmin), h.GetMemberProfile)
		profiles.GET("/trainer/:id", h.GetTrainerProfile)
	}
}

func (h *ProfileHandler) GetOwnMemberProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMemberProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SaveOwnMemberProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveMemberProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.SaveMemberProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwnTrainerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetTrainerProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SaveOwnTrainerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveTrainerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.SaveTrainerProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMemberProfile(c *gin.Context) {
	userID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	profile, err := h.profileService.GetMemberProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetTrainerProfile(c *gin.Context) {
	userID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	profile, err := h.profileService.GetTrainerProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
