package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
)

type GoalHandler struct {
	goals service.IGoalService
	auth  middleware.TokenValidator
	log   *logrus.Logger
}

func NewGoalHandler(goals service.IGoalService, auth middleware.TokenValidator, log *logrus.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, auth: auth, log: log}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	goals.Use(middleware.AuthMiddleware(h.auth))
	{
		goals.GET("", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.POST("/:id/progress", h.ReportProgress)
		goals.DELETE("/:id", h.DeleteGoal)
	}
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	summary, err := h.goals.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	goal, err := h.goals.CreateGoal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (h *GoalHandler) ReportProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "goal")
	if !ok {
		return
	}
	var req types.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	goal, err := h.goals.ReportProgress(c.Request.Context(), userID, goalID, *req.Value)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "goal")
	if !ok {
		return
	}
	if _, err := h.goals.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
