package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/embedding"
)

// Difficulty is how demanding a recipe is to cook
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DietaryInfo holds the dietary flags a recipe satisfies
type DietaryInfo struct {
	Vegetarian  bool `json:"vegetarian"`
	Vegan       bool `json:"vegan"`
	GlutenFree  bool `json:"glutenFree"`
	DairyFree   bool `json:"dairyFree"`
	Pescetarian bool `json:"pescetarian"`
	HighProtein bool `json:"highProtein"`
	HighFibre   bool `json:"highFibre"`
}

// Nutrition is the per-serving nutrition of a recipe
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// RecipeIngredient is one line of a recipe. Amount is relative to the
// owning recipe's Servings.
type RecipeIngredient struct {
	Name        string   `json:"name"`
	Amount      float64  `json:"amount"`
	Unit        string   `json:"unit"`
	Notes       string   `json:"notes,omitempty"`
	Substitutes []string `json:"substitutes,omitempty"`
	ProductName string   `json:"product_name,omitempty"`
	Price       string   `json:"price,omitempty"`
	Promoted    bool     `json:"promoted,omitempty"`
}

// Recipe is a catalog entry. Recipes are read-only once loaded.
type Recipe struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Ingredients  IngredientList  `gorm:"type:jsonb;not null" json:"ingredients"`
	Instructions StringList      `gorm:"type:jsonb;not null" json:"instructions"`
	PrepTime     int             `gorm:"not null;default:0" json:"prepTime"`
	CookTime     int             `gorm:"not null;default:0" json:"cookTime"`
	Servings     int             `gorm:"not null" json:"servings"`
	DietaryInfo  DietaryInfo     `gorm:"embedded;embeddedPrefix:diet_" json:"dietaryInfo"`
	Nutrition    Nutrition       `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	Difficulty   Difficulty      `gorm:"size:20;not null;default:'beginner'" json:"difficulty"`
	HealthScore  int             `gorm:"not null;default:0" json:"healthScore"`
	Embedding    pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

// TotalTime is prep plus cook time in minutes
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// BeforeCreate assigns an id when the caller did not
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the search embedding in step with name and description
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	r.Embedding = embedding.Generate(r.Name + " " + r.Description)
	return nil
}
