package handlers

import (
	"net/http"

	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	*BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(base *BaseHandler, sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    base,
		sessionService: sessionService,
	}
}

func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	sessions.Use(middleware.AuthMiddleware())
	{
		sessions.POST("", middleware.RequireRoles(models.UserRoleMember), h.Book)
		sessions.GET("/my", h.ListOwn)
		sessions.GET("/upcoming", h.ListUpcoming)
		sessions.GET("/:id", h.GetByID)
		sessions.PUT("/:id/complete",
			middleware.RequireRoles(models.UserRoleTrainer, models.UserRoleAdmin), h.Complete)
		sessions.PUT("/:id/cancel", h.Cancel)
		sessions.GET("", middleware.RequireRoles(models.UserRoleAdmin), h.ListAll)
	}
}

func (h *SessionHandler) Book(c *gin.Context) {
	memberID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BookSessionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	session, err := h.sessionService.Book(memberID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListOwn dispatches on the caller's role: members see the sessions
// they booked, trainers the ones they deliver.
func (h *SessionHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetRole(c)

	var (
		sessions []*dto.SessionResponse
		err      error
	)
	if role == models.UserRoleTrainer {
		sessions, err = h.sessionService.GetByTrainerID(userID)
	} else {
		sessions, err = h.sessionService.GetByMemberID(userID)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// ListUpcoming is the dashboard view: future scheduled sessions only,
// soonest first, dispatched on the caller's role like ListOwn.
func (h *SessionHandler) ListUpcoming(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetRole(c)

	var (
		sessions []*dto.SessionResponse
		err      error
	)
	if role == models.UserRoleTrainer {
		sessions, err = h.sessionService.GetUpcomingByTrainerID(userID)
	} else {
		sessions, err = h.sessionService.GetUpcomingByMemberID(userID)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) GetByID(c *gin.Context) {
	sessionID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	session, err := h.sessionService.GetByID(sessionID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Complete(c *gin.Context) {
	sessionID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.sessionService.Complete(sessionID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session completed"})
}

func (h *SessionHandler) Cancel(c *gin.Context) {
	sessionID, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.sessionService.Cancel(sessionID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}

func (h *SessionHandler) ListAll(c *gin.Context) {
	sessions, err := h.sessionService.GetAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}
