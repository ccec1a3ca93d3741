package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/mealplanner/backend/internal/compat"
	"github.com/pageza/mealplanner/backend/internal/embedding"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// ErrRecipeServings rejects recipes that cannot be scaled
var ErrRecipeServings = errors.New("recipe servings must be greater than zero")

// RecipeService handles recipe operations
type RecipeService struct {
	db      *gorm.DB
	log     *logrus.Logger
	metrics *metrics.Metrics
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, log *logrus.Logger, m *metrics.Metrics) *RecipeService {
	return &RecipeService{db: db, log: log, metrics: m}
}

// CreateRecipe loads a recipe into the catalog
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if req.Servings <= 0 {
		return nil, ErrRecipeServings
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	instructions := req.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	recipe := &models.Recipe{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Ingredients:  models.IngredientList(req.Ingredients),
		Instructions: models.StringList(instructions),
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		DietaryInfo:  req.DietaryInfo,
		Nutrition:    req.Nutrition,
		Difficulty:   difficulty,
		HealthScore:  req.HealthScore,
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.log.WithFields(logrus.Fields{"recipe_id": recipe.ID, "name": recipe.Name}).Info("recipe added to catalog")
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get recipe %s: %w", id, err)
	}
	return &recipe, nil
}

// SearchRecipes returns the catalog, narrowed by a keyword when query is
// set. On postgres matches are ordered by embedding distance to the query.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	q := s.db.WithContext(ctx).Model(&models.Recipe{})

	query = strings.TrimSpace(query)
	switch {
	case query == "":
		q = q.Order("created_at ASC").Order("id ASC")
	case s.db.Dialector.Name() == "postgres":
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients::text) LIKE ?", like, like, like).
			Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL:                "embedding <-> ?, created_at ASC, id ASC",
				Vars:               []interface{}{embedding.Generate(query)},
				WithoutParentheses: true,
			}})
	default:
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?", like, like, like).
			Order("created_at ASC").Order("id ASC")
	}

	if err := q.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// Catalog is the recipe list a caller sees. Guests (nil profile) get the
// catalog unfiltered; everyone else gets admissible recipes, best first.
func (s *RecipeService) Catalog(ctx context.Context, query string, profile *models.HealthProfile) ([]*models.Recipe, error) {
	recipes, err := s.SearchRecipes(ctx, query)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		s.metrics.CatalogViews.WithLabelValues("guest").Inc()
		return recipes, nil
	}
	s.metrics.CatalogViews.WithLabelValues("profile").Inc()
	return compat.View(recipes, profile), nil
}

// Compatibility evaluates every recipe against profile
func (s *RecipeService) Compatibility(ctx context.Context, profile *models.HealthProfile) ([]compat.Ranked, error) {
	recipes, err := s.SearchRecipes(ctx, "")
	if err != nil {
		return nil, err
	}
	ranked := compat.Explain(recipes, profile)
	for _, r := range ranked {
		for _, rule := range r.Verdict.Rules {
			s.metrics.FilterRejections.WithLabelValues(string(rule)).Inc()
		}
	}
	return ranked, nil
}
