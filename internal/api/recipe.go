package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/types"
)

type RecipeHandler struct {
	recipes  service.IRecipeService
	profiles service.IProfileService
	auth     middleware.TokenValidator
	log      *logrus.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, profiles service.IProfileService, auth middleware.TokenValidator, log *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, profiles: profiles, auth: auth, log: log}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuthMiddleware(h.auth), h.ListRecipes)
		recipes.GET("/compatibility", middleware.AuthMiddleware(h.auth), h.Compatibility)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.auth), h.CreateRecipe)
	}
}

// ListRecipes serves the catalog view. Guests see every recipe in catalog
// order; signed in users see what their profile admits, best match first.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var profile *models.HealthProfile
	if userID, ok := middleware.UserID(c); ok {
		p, err := h.profiles.GetProfile(c.Request.Context(), userID)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		profile = p
	}

	recipes, err := h.recipes.Catalog(c.Request.Context(), c.Query("q"), profile)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "recipe")
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// Compatibility explains, for every recipe, whether the caller's profile
// admits it and why not
func (h *RecipeHandler) Compatibility(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	ranked, err := h.recipes.Compatibility(c.Request.Context(), profile)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": ranked})
}
