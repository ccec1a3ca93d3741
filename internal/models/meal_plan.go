package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType is one of the fixed daily slots
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists the slots in display order
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

// Order is the display position of the slot within a day
func (m MealType) Order() int {
	for i, t := range MealTypes {
		if t == m {
			return i
		}
	}
	return len(MealTypes)
}

// Valid reports whether m is a known slot
func (m MealType) Valid() bool {
	return m.Order() < len(MealTypes)
}

// MealPlanItem places a recipe in a day/meal-type slot. Recipe is a
// read-only snapshot loaded with the item.
type MealPlanItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_meal_plan_items_slot,priority:1" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Recipe    Recipe    `gorm:"foreignKey:RecipeID" json:"recipe"`
	Date      time.Time `gorm:"not null;index;uniqueIndex:idx_meal_plan_items_slot,priority:2" json:"date"`
	DayOfWeek int       `gorm:"not null" json:"dayOfWeek"`
	MealType  MealType  `gorm:"size:20;not null;uniqueIndex:idx_meal_plan_items_slot,priority:3" json:"mealType"`
	Servings  int       `gorm:"not null" json:"servings"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not
func (m *MealPlanItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
