package handlers

import (
	"net/http"

	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	*BaseHandler
	exerciseService services.ExerciseService
}

func NewExerciseHandler(base *BaseHandler, exerciseService services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		BaseHandler:     base,
		exerciseService: exerciseService,
	}
}

func (h *ExerciseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exercises := rg.Group("/exercises")
	exercises.Use(middleware.AuthMiddleware())
	{
		exercises.GET("", h.List)
		exercises.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/exercises")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleTrainer))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
	}
}

// List returns the whole catalog, or a category slice when ?category=
// is present.
func (h *ExerciseHandler) List(c *gin.Context) {
	var (
		exercises []models.Exercise
		err       error
	)
	if category := c.Query("category"); category != "" {
		exercises, err = h.exerciseService.SearchByCategory(category)
	} else {
		exercises, err = h.exerciseService.GetAll()
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHandler) GetByID(c *gin.Context) {
	exerciseID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	exercise, err := h.exerciseService.GetByID(exerciseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req dto.SaveExerciseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exercise, err := h.exerciseService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	exerciseID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SaveExerciseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exercise, err := h.exerciseService.Update(exerciseID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}
