package handlers

import (
	"net/http"

	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	*BaseHandler
	workoutService services.WorkoutService
}

func NewWorkoutHandler(base *BaseHandler, workoutService services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		BaseHandler:    base,
		workoutService: workoutService,
	}
}

func (h *WorkoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workouts := rg.Group("/workouts")
	workouts.Use(middleware.AuthMiddleware())
	{
		workouts.POST("",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleMember), h.Create)
		workouts.GET("/my", h.ListOwn)
		workouts.GET("/:id", h.GetByID)
		workouts.PUT("/:id",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleAdmin), h.Update)
		workouts.DELETE("/:id",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleAdmin), h.Deactivate)
	}
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	authorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveWorkoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Members may only author plans for themselves.
	if role, _ := middleware.GetRole(c); role == models.UserRoleMember && req.MemberID != authorID {
		h.HandleServiceError(c, apperrors.ErrInsufficientPermissions)
		return
	}

	workout, err := h.workoutService.Create(authorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *WorkoutHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetRole(c)

	var (
		workouts []*dto.WorkoutResponse
		err      error
	)
	if role == models.UserRoleTrainer {
		workouts, err = h.workoutService.GetByTrainerID(userID)
	} else {
		workouts, err = h.workoutService.GetByMemberID(userID)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) GetByID(c *gin.Context) {
	workoutID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	workout, err := h.workoutService.GetByID(workoutID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	workoutID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SaveWorkoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	workout, err := h.workoutService.Update(workoutID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Deactivate(c *gin.Context) {
	workoutID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.workoutService.Deactivate(workoutID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deactivated"})
}
