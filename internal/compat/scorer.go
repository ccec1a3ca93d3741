package compat

import (
	"math"

	"github.com/pageza/mealplanner/backend/internal/models"
)

const (
	highProteinGrams = 15
	highFiberGrams   = 5
	preferenceBonus  = 2
	skillMatchBonus  = 2
	skillNearBonus   = 1
)

// Score ranks an admissible recipe for a profile's soft preferences.
// Scores are only comparable with each other.
func Score(recipe *models.Recipe, profile *models.HealthProfile) float64 {
	if profile == nil {
		return 0
	}
	var score float64

	if profile.PreferenceEnabled(models.PreferenceHighProtein) && recipe.Nutrition.Protein >= highProteinGrams {
		score += preferenceBonus
	}
	if profile.PreferenceEnabled(models.PreferenceHighFiber, models.PreferenceHighFibre) && recipe.Nutrition.Fiber >= highFiberGrams {
		score += preferenceBonus
	}

	if profile.CookingTimeMax > 0 {
		fit := 1 - float64(recipe.TotalTime())/float64(profile.CookingTimeMax)
		score += math.Max(0, fit)
	}

	switch profile.SkillLevel {
	case models.SkillBeginner:
		if recipe.Difficulty == models.DifficultyBeginner {
			score += skillMatchBonus
		}
	case models.SkillIntermediate:
		switch recipe.Difficulty {
		case models.DifficultyIntermediate:
			score += skillMatchBonus
		case models.DifficultyBeginner:
			score += skillNearBonus
		}
	case models.SkillAdvanced:
		score += skillMatchBonus
	}

	return score
}
