package compat

import (
	"fmt"

	"github.com/pageza/mealplanner/backend/internal/models"
)

// Rule names a hard constraint a recipe can fail
type Rule string

const (
	RuleDiet        Rule = "diet"
	RuleGLP1        Rule = "glp1"
	RuleRestriction Rule = "restriction"
	RuleAllergen    Rule = "allergen"
	RuleCustom      Rule = "custom_restriction"
	RuleSkill       Rule = "skill"
)

// Verdict is the outcome of checking one recipe against one profile
type Verdict struct {
	Pass    bool     `json:"pass"`
	Reasons []string `json:"reasons"`
	Rules   []Rule   `json:"rules"`
}

func (v *Verdict) reject(rule Rule, format string, args ...interface{}) {
	v.Pass = false
	v.Rules = append(v.Rules, rule)
	v.Reasons = append(v.Reasons, fmt.Sprintf(format, args...))
}

// restrictionFlags maps named restrictions to the dietary flag that satisfies them
var restrictionFlags = map[string]func(models.DietaryInfo) bool{
	"gluten-free":  func(d models.DietaryInfo) bool { return d.GlutenFree },
	"dairy-free":   func(d models.DietaryInfo) bool { return d.DairyFree },
	"vegetarian":   func(d models.DietaryInfo) bool { return d.Vegetarian },
	"vegan":        func(d models.DietaryInfo) bool { return d.Vegan },
	"pescetarian":  func(d models.DietaryInfo) bool { return d.Pescetarian },
	"pescatarian":  func(d models.DietaryInfo) bool { return d.Pescetarian },
	"high-protein": func(d models.DietaryInfo) bool { return d.HighProtein },
	"high-fibre":   func(d models.DietaryInfo) bool { return d.HighFibre },
	"high-fiber":   func(d models.DietaryInfo) bool { return d.HighFibre },
}

// IsAdmissible evaluates every hard constraint of the profile against the
// recipe. All failing rules are reported, not just the first.
func IsAdmissible(recipe *models.Recipe, profile *models.HealthProfile) Verdict {
	v := Verdict{Pass: true, Reasons: []string{}, Rules: []Rule{}}
	if profile == nil {
		return v
	}
	diet := recipe.DietaryInfo

	switch profile.DietType {
	case models.DietVegetarian:
		if !diet.Vegetarian {
			v.reject(RuleDiet, "not vegetarian")
		}
	case models.DietVegan:
		if !diet.Vegan {
			v.reject(RuleDiet, "not vegan")
		}
	case models.DietPescatarian:
		if !diet.Pescetarian {
			v.reject(RuleDiet, "not pescatarian")
		}
	}

	if profile.IsOnGLP1 && !(diet.HighProtein && diet.HighFibre) {
		v.reject(RuleGLP1, "GLP-1 plan requires a high-protein and high-fibre recipe")
	}

	for _, r := range profile.Restrictions {
		flag, ok := restrictionFlags[Normalize(r)]
		if ok && !flag(diet) {
			v.reject(RuleRestriction, "not %s", Normalize(r))
		}
	}

	for _, allergy := range profile.Allergies {
		if name, ok := findIngredient(recipe, allergy); ok {
			v.reject(RuleAllergen, "contains allergen %q (%s)", Normalize(allergy), name)
		}
	}

	for _, custom := range profile.CustomRestrictions {
		if name, ok := findIngredient(recipe, custom); ok {
			v.reject(RuleCustom, "contains restricted ingredient %q (%s)", Normalize(custom), name)
		}
	}

	if limit, ok := skillRank(profile.SkillLevel); ok {
		if difficultyRank(recipe.Difficulty) > limit {
			v.reject(RuleSkill, "%s recipe is above %s skill level", recipe.Difficulty, profile.SkillLevel)
		}
	}

	return v
}

func findIngredient(recipe *models.Recipe, term string) (string, bool) {
	for _, ing := range recipe.Ingredients {
		if tokenMatch(ing.Name, term) {
			return Normalize(ing.Name), true
		}
	}
	return "", false
}

func skillRank(level models.SkillLevel) (int, bool) {
	switch level {
	case models.SkillBeginner:
		return 0, true
	case models.SkillIntermediate:
		return 1, true
	case models.SkillAdvanced:
		return 2, true
	}
	return 0, false
}

// difficultyRank treats an unknown difficulty as advanced
func difficultyRank(d models.Difficulty) int {
	switch d {
	case models.DifficultyBeginner:
		return 0
	case models.DifficultyIntermediate:
		return 1
	}
	return 2
}
