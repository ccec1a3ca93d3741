package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
)

type MealPlanHandler struct {
	plans service.IMealPlanService
	auth  middleware.TokenValidator
	log   *logrus.Logger
}

func NewMealPlanHandler(plans service.IMealPlanService, auth middleware.TokenValidator, log *logrus.Logger) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, auth: auth, log: log}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/meal-plan")
	plan.Use(middleware.AuthMiddleware(h.auth))
	{
		plan.GET("", h.GetWeek)
		plan.POST("", h.AddMeal)
		plan.POST("/:id/move", h.MoveMeal)
		plan.DELETE("/:id", h.DeleteMeal)
	}
}

func (h *MealPlanHandler) GetWeek(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	days, err := h.plans.GetWeek(c.Request.Context(), userID, week)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weekStart": schedule.Date(week).Format(schedule.DateLayout),
		"days":      days,
	})
}

func (h *MealPlanHandler) AddMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	item, err := h.plans.AddMeal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// MoveMeal answers 200 whether or not anything moved; "moved" tells which
func (h *MealPlanHandler) MoveMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := pathID(c, "meal")
	if !ok {
		return
	}
	var req types.MoveMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	item, err := h.plans.MoveMeal(c.Request.Context(), userID, mealID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusOK, gin.H{"moved": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": true, "meal": item})
}

func (h *MealPlanHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := pathID(c, "meal")
	if !ok {
		return
	}
	if _, err := h.plans.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
