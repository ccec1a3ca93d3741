package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplanner/backend/internal/models"
)

func recipe(name string, opts ...func(*models.Recipe)) *models.Recipe {
	r := &models.Recipe{Name: name, Servings: 2, Difficulty: models.DifficultyBeginner}
	for _, o := range opts {
		o(r)
	}
	return r
}

func withDiet(d models.DietaryInfo) func(*models.Recipe) {
	return func(r *models.Recipe) { r.DietaryInfo = d }
}

func withIngredients(names ...string) func(*models.Recipe) {
	return func(r *models.Recipe) {
		for _, n := range names {
			r.Ingredients = append(r.Ingredients, models.RecipeIngredient{Name: n, Amount: 1, Unit: "g"})
		}
	}
}

func withDifficulty(d models.Difficulty) func(*models.Recipe) {
	return func(r *models.Recipe) { r.Difficulty = d }
}

func profile(opts ...func(*models.HealthProfile)) *models.HealthProfile {
	p := &models.HealthProfile{DietType: models.DietOmnivore, SkillLevel: models.SkillAdvanced}
	for _, o := range opts {
		o(p)
	}
	return p
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "olive oil", Normalize("  Olive Oil \t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestTokenMatch(t *testing.T) {
	cases := []struct {
		ingredient, term string
		want             bool
	}{
		{"Peanuts", "peanuts", true},
		{"peanut", "peanut butter", true},
		{"peanut butter", "peanut", true},
		{"peanut oil", "peanut butter", true},
		{"eggs", "egg", true},
		{"Egg whites", "egg", true},
		{"pea", "peanut", true},
		{"egg", "eggs", true},
		{"peanut butter", "peanuts", true},
		{"rice", "eggs", false},
		{"milk", "egg", false},
		{"", "egg", false},
		{"egg", "  ", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tokenMatch(tc.ingredient, tc.term), "%q vs %q", tc.ingredient, tc.term)
	}
}

func TestIsAdmissibleNilProfile(t *testing.T) {
	v := IsAdmissible(recipe("anything"), nil)
	assert.True(t, v.Pass)
	assert.Empty(t, v.Reasons)
}

func TestIsAdmissibleDietType(t *testing.T) {
	plain := recipe("steak")
	veg := recipe("salad", withDiet(models.DietaryInfo{Vegetarian: true}))
	vegan := recipe("tofu", withDiet(models.DietaryInfo{Vegetarian: true, Vegan: true}))
	fish := recipe("salmon", withDiet(models.DietaryInfo{Pescetarian: true}))

	vegetarian := profile(func(p *models.HealthProfile) { p.DietType = models.DietVegetarian })
	assert.False(t, IsAdmissible(plain, vegetarian).Pass)
	assert.True(t, IsAdmissible(veg, vegetarian).Pass)

	pesc := profile(func(p *models.HealthProfile) { p.DietType = models.DietPescatarian })
	assert.True(t, IsAdmissible(fish, pesc).Pass)
	assert.False(t, IsAdmissible(veg, pesc).Pass)

	omni := profile()
	for _, r := range []*models.Recipe{plain, veg, vegan, fish} {
		assert.True(t, IsAdmissible(r, omni).Pass, r.Name)
	}
}

func TestVeganProfileOnlyAdmitsVeganRecipes(t *testing.T) {
	vegan := profile(func(p *models.HealthProfile) { p.DietType = models.DietVegan })
	for _, d := range []models.DietaryInfo{
		{},
		{Vegetarian: true},
		{Vegan: true},
		{Vegan: true, GlutenFree: true},
		{Pescetarian: true, HighProtein: true},
	} {
		r := recipe("r", withDiet(d))
		if IsAdmissible(r, vegan).Pass {
			assert.True(t, r.DietaryInfo.Vegan)
		}
	}
}

func TestGLP1RequiresProteinAndFibre(t *testing.T) {
	glp := profile(func(p *models.HealthProfile) { p.IsOnGLP1 = true })

	assert.False(t, IsAdmissible(recipe("p", withDiet(models.DietaryInfo{HighProtein: true})), glp).Pass)
	assert.False(t, IsAdmissible(recipe("f", withDiet(models.DietaryInfo{HighFibre: true})), glp).Pass)

	v := IsAdmissible(recipe("both", withDiet(models.DietaryInfo{HighProtein: true, HighFibre: true})), glp)
	assert.True(t, v.Pass)
}

func TestNamedRestrictions(t *testing.T) {
	p := profile(func(p *models.HealthProfile) {
		p.Restrictions = models.StringList{"Gluten-Free", "dairy-free", "low-sodium"}
	})

	v := IsAdmissible(recipe("bread"), p)
	assert.False(t, v.Pass)
	assert.Equal(t, []Rule{RuleRestriction, RuleRestriction}, v.Rules)

	ok := recipe("rice", withDiet(models.DietaryInfo{GlutenFree: true, DairyFree: true}))
	assert.True(t, IsAdmissible(ok, p).Pass, "restrictions without a flag are ignored")
}

func TestAllergenExclusion(t *testing.T) {
	p := profile(func(p *models.HealthProfile) { p.Allergies = models.StringList{"Peanut"} })

	v := IsAdmissible(recipe("satay", withIngredients("chicken", "Peanut Butter")), p)
	require.False(t, v.Pass)
	assert.Equal(t, []Rule{RuleAllergen}, v.Rules)
	assert.Contains(t, v.Reasons[0], "peanut butter")

	assert.True(t, IsAdmissible(recipe("stir fry", withIngredients("chicken", "soy sauce")), p).Pass)
}

func TestAllergenMatchesEitherPlural(t *testing.T) {
	cases := []struct {
		ingredient, allergy string
	}{
		{"egg", "eggs"},
		{"eggs", "egg"},
		{"peanut butter", "peanuts"},
		{"shrimp", "shrimps"},
		{"Shrimps", "shrimp paste"},
	}
	for _, tc := range cases {
		t.Run(tc.ingredient+"/"+tc.allergy, func(t *testing.T) {
			p := profile(func(p *models.HealthProfile) { p.Allergies = models.StringList{tc.allergy} })
			v := IsAdmissible(recipe("dish", withIngredients(tc.ingredient)), p)
			assert.False(t, v.Pass)
			assert.Equal(t, []Rule{RuleAllergen}, v.Rules)
		})
	}

	p := profile(func(p *models.HealthProfile) { p.Allergies = models.StringList{"eggs"} })
	assert.True(t, IsAdmissible(recipe("dish", withIngredients("rice", "spinach")), p).Pass)
}

func TestCustomRestrictionMatchesShorterTerm(t *testing.T) {
	p := profile(func(p *models.HealthProfile) { p.CustomRestrictions = models.StringList{"mushrooms"} })

	v := IsAdmissible(recipe("risotto", withIngredients("rice", "mushroom")), p)
	assert.False(t, v.Pass)
	assert.Equal(t, []Rule{RuleCustom}, v.Rules)
}

func TestCustomRestrictions(t *testing.T) {
	p := profile(func(p *models.HealthProfile) { p.CustomRestrictions = models.StringList{"cilantro leaves"} })

	v := IsAdmissible(recipe("salsa", withIngredients("tomato", "cilantro")), p)
	assert.False(t, v.Pass)
	assert.Equal(t, []Rule{RuleCustom}, v.Rules)
}

func TestSkillGating(t *testing.T) {
	beginner := profile(func(p *models.HealthProfile) { p.SkillLevel = models.SkillBeginner })
	intermediate := profile(func(p *models.HealthProfile) { p.SkillLevel = models.SkillIntermediate })
	advanced := profile()
	unset := profile(func(p *models.HealthProfile) { p.SkillLevel = "" })

	easy := recipe("easy", withDifficulty(models.DifficultyBeginner))
	mid := recipe("mid", withDifficulty(models.DifficultyIntermediate))
	hard := recipe("hard", withDifficulty(models.DifficultyAdvanced))
	odd := recipe("odd", withDifficulty("expert"))

	assert.True(t, IsAdmissible(easy, beginner).Pass)
	assert.False(t, IsAdmissible(mid, beginner).Pass)
	assert.False(t, IsAdmissible(hard, beginner).Pass)

	assert.True(t, IsAdmissible(easy, intermediate).Pass)
	assert.True(t, IsAdmissible(mid, intermediate).Pass)
	assert.False(t, IsAdmissible(hard, intermediate).Pass)
	assert.False(t, IsAdmissible(odd, intermediate).Pass)

	for _, r := range []*models.Recipe{easy, mid, hard, odd} {
		assert.True(t, IsAdmissible(r, advanced).Pass)
		assert.True(t, IsAdmissible(r, unset).Pass)
	}
}

func TestAllFailingRulesAreReported(t *testing.T) {
	p := profile(func(p *models.HealthProfile) {
		p.DietType = models.DietVegan
		p.IsOnGLP1 = true
		p.Allergies = models.StringList{"egg"}
		p.SkillLevel = models.SkillBeginner
	})
	r := recipe("omelette", withIngredients("eggs", "cheese"), withDifficulty(models.DifficultyAdvanced))

	v := IsAdmissible(r, p)
	assert.False(t, v.Pass)
	assert.Equal(t, []Rule{RuleDiet, RuleGLP1, RuleAllergen, RuleSkill}, v.Rules)
	assert.Len(t, v.Reasons, 4)
}

func TestScore(t *testing.T) {
	r := recipe("bowl", withDifficulty(models.DifficultyBeginner))
	r.Nutrition = models.Nutrition{Protein: 20, Fiber: 6}
	r.PrepTime, r.CookTime = 10, 10

	p := &models.HealthProfile{
		SkillLevel: models.SkillBeginner,
		NutritionalPreferences: models.PreferenceList{
			{ID: "high-protein", Enabled: true},
			{ID: "high-fiber", Enabled: true},
		},
		CookingTimeMax: 40,
	}
	assert.InDelta(t, 2+2+0.5+2, Score(r, p), 1e-9)

	p.NutritionalPreferences[0].Enabled = false
	assert.InDelta(t, 2+0.5+2, Score(r, p), 1e-9)
}

func TestScoreTimeFit(t *testing.T) {
	r := recipe("slow")
	r.PrepTime, r.CookTime = 30, 90
	p := &models.HealthProfile{CookingTimeMax: 60}
	assert.Equal(t, 0.0, Score(r, p), "time bonus never goes negative")

	p.CookingTimeMax = 0
	assert.Equal(t, 0.0, Score(r, p))
}

func TestScoreSkillMatch(t *testing.T) {
	easy := recipe("easy", withDifficulty(models.DifficultyBeginner))
	mid := recipe("mid", withDifficulty(models.DifficultyIntermediate))
	hard := recipe("hard", withDifficulty(models.DifficultyAdvanced))

	intermediate := &models.HealthProfile{SkillLevel: models.SkillIntermediate}
	assert.Equal(t, 1.0, Score(easy, intermediate))
	assert.Equal(t, 2.0, Score(mid, intermediate))
	assert.Equal(t, 0.0, Score(hard, intermediate))

	advanced := &models.HealthProfile{SkillLevel: models.SkillAdvanced}
	for _, r := range []*models.Recipe{easy, mid, hard} {
		assert.Equal(t, 2.0, Score(r, advanced))
	}

	beginner := &models.HealthProfile{SkillLevel: models.SkillBeginner}
	assert.Equal(t, 2.0, Score(easy, beginner))
	assert.Equal(t, 0.0, Score(mid, beginner))
}

func TestViewWithoutProfileReturnsCatalog(t *testing.T) {
	catalog := []*models.Recipe{recipe("c"), recipe("a"), recipe("b", withDifficulty(models.DifficultyAdvanced))}
	assert.Equal(t, catalog, View(catalog, nil))
}

func TestViewFiltersVeganExample(t *testing.T) {
	a := recipe("A", withDifficulty(models.DifficultyBeginner))
	a.Nutrition = models.Nutrition{Protein: 20, Fiber: 6}
	a.PrepTime, a.CookTime = 5, 15

	b := recipe("B", withDiet(models.DietaryInfo{Vegan: true, Vegetarian: true}), withDifficulty(models.DifficultyAdvanced))
	b.Nutrition = models.Nutrition{Protein: 10, Fiber: 2}
	b.PrepTime, b.CookTime = 20, 30

	p := profile(func(p *models.HealthProfile) { p.DietType = models.DietVegan })
	assert.Equal(t, []*models.Recipe{b}, View([]*models.Recipe{a, b}, p))
}

func TestViewSortsByScoreStably(t *testing.T) {
	p := &models.HealthProfile{
		SkillLevel:             models.SkillIntermediate,
		NutritionalPreferences: models.PreferenceList{{ID: "high-protein", Enabled: true}},
	}
	first := recipe("first", withDifficulty(models.DifficultyBeginner))
	second := recipe("second", withDifficulty(models.DifficultyIntermediate))
	third := recipe("third", withDifficulty(models.DifficultyBeginner))
	best := recipe("best", withDifficulty(models.DifficultyIntermediate))
	best.Nutrition.Protein = 30

	got := View([]*models.Recipe{first, second, third, best}, p)
	assert.Equal(t, []*models.Recipe{best, second, first, third}, got)
}

func TestExplain(t *testing.T) {
	p := profile(func(p *models.HealthProfile) { p.Allergies = models.StringList{"shrimp"} })
	bad := recipe("scampi", withIngredients("shrimp", "garlic"))
	good := recipe("pasta", withIngredients("pasta", "garlic"))

	got := Explain([]*models.Recipe{bad, good}, p)
	require.Len(t, got, 2)
	assert.Equal(t, good, got[0].Recipe)
	assert.True(t, got[0].Verdict.Pass)
	assert.Equal(t, 2.0, got[0].Score)
	assert.Equal(t, bad, got[1].Recipe)
	assert.False(t, got[1].Verdict.Pass)
}
