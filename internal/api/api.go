package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/service"
)

// Services is everything the v1 API is served from
type Services struct {
	Auth      service.IAuthService
	Recipes   service.IRecipeService
	Profiles  service.IProfileService
	MealPlans service.IMealPlanService
	Shopping  service.IShoppingService
	Goals     service.IGoalService
	// ExportLimiter is optional
	ExportLimiter *middleware.RateLimiter
}

// RegisterRoutes mounts every handler on router, normally /api/v1
func RegisterRoutes(router *gin.RouterGroup, s Services, log *logrus.Logger) {
	NewRecipeHandler(s.Recipes, s.Profiles, s.Auth, log).RegisterRoutes(router)
	NewProfileHandler(s.Profiles, s.Auth, log).RegisterRoutes(router)
	NewMealPlanHandler(s.MealPlans, s.Auth, log).RegisterRoutes(router)
	NewShoppingHandler(s.Shopping, s.Auth, s.ExportLimiter, log).RegisterRoutes(router)
	NewGoalHandler(s.Goals, s.Auth, log).RegisterRoutes(router)
}
