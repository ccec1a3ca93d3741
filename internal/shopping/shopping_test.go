package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplanner/backend/internal/models"
)

func planned(recipe models.Recipe, servings int) models.MealPlanItem {
	return models.MealPlanItem{Recipe: recipe, Servings: servings}
}

func oatmeal() models.Recipe {
	return models.Recipe{
		Name:     "Oatmeal",
		Servings: 2,
		Ingredients: models.IngredientList{
			{Name: "oats", Amount: 100, Unit: "g"},
		},
	}
}

func TestAggregateScalesByServings(t *testing.T) {
	items := []models.MealPlanItem{planned(oatmeal(), 2), planned(oatmeal(), 4)}

	list := Aggregate(items, nil)

	require.Len(t, list, 1)
	assert.Equal(t, Key("oats"), list[0].Key)
	assert.InDelta(t, 300.0, list[0].Amount, 1e-9)
	assert.Equal(t, "g", list[0].Unit)
	assert.Equal(t, CategoryPantry, list[0].Category)
}

func TestAggregateIsAdditive(t *testing.T) {
	a := []models.MealPlanItem{planned(oatmeal(), 1)}
	b := []models.MealPlanItem{planned(oatmeal(), 3)}

	sum := func(list []GroupedIngredient) float64 {
		require.Len(t, list, 1)
		return list[0].Amount
	}

	assert.InDelta(t, sum(Aggregate(a, nil))+sum(Aggregate(b, nil)), sum(Aggregate(append(a, b...), nil)), 1e-9)
}

func TestFirstWriteWins(t *testing.T) {
	first := models.Recipe{Servings: 1, Ingredients: models.IngredientList{
		{Name: "Milk", Amount: 1, Unit: "cup", ProductName: "Farm Milk", Price: "$1.50"},
	}}
	second := models.Recipe{Servings: 1, Ingredients: models.IngredientList{
		{Name: " milk ", Amount: 250, Unit: "ml", ProductName: "Other Milk", Price: "$9", Promoted: true},
	}}

	list := Aggregate([]models.MealPlanItem{planned(first, 1), planned(second, 1)}, nil)

	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, "Milk", got.Name)
	assert.Equal(t, "cup", got.Unit)
	assert.Equal(t, "Farm Milk", got.ProductName)
	assert.Equal(t, "$1.50", got.Price)
	assert.False(t, got.Promoted)
	assert.InDelta(t, 251.0, got.Amount, 1e-9)
}

func TestManualItemsMergeWithPlannedMeals(t *testing.T) {
	manual := []ManualItem{
		{Name: "OATS", Amount: 50, Unit: "kg"},
		{Name: "Paper towels", Amount: 1},
	}

	list := Aggregate([]models.MealPlanItem{planned(oatmeal(), 2)}, manual)

	require.Len(t, list, 2)
	assert.Equal(t, Key("oats"), list[0].Key)
	assert.InDelta(t, 150.0, list[0].Amount, 1e-9)
	assert.Equal(t, "g", list[0].Unit)
	assert.Equal(t, CategoryOther, list[1].Category)
}

func TestAggregateSkipsZeroServingRecipes(t *testing.T) {
	broken := models.Recipe{Servings: 0, Ingredients: models.IngredientList{{Name: "salt", Amount: 1}}}
	assert.Empty(t, Aggregate([]models.MealPlanItem{planned(broken, 2)}, nil))
}

func TestAggregateOrdersByCategoryThenPromoted(t *testing.T) {
	recipe := models.Recipe{Servings: 1, Ingredients: models.IngredientList{
		{Name: "rice", Amount: 1},
		{Name: "cheddar cheese", Amount: 1},
		{Name: "spinach", Amount: 1},
		{Name: "flour", Amount: 1, Promoted: true},
		{Name: "chicken breast", Amount: 1},
		{Name: "carrot", Amount: 1},
		{Name: "sponge", Amount: 1},
	}}

	list := Aggregate([]models.MealPlanItem{planned(recipe, 1)}, nil)

	var names []string
	for _, it := range list {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"spinach", "carrot", "chicken breast", "cheddar cheese", "flour", "rice", "sponge"}, names)

	groups := GroupByCategory(list)
	require.Len(t, groups, 5)
	assert.Equal(t, CategoryProduce, groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, CategoryOther, groups[4].Category)
}

func TestCategorize(t *testing.T) {
	cases := map[string]Category{
		"Baby spinach":    CategoryProduce,
		"eggplant":        CategoryProduce,
		"eggs":            CategoryDairy,
		"peanut butter":   CategoryPantry,
		"butter":          CategoryDairy,
		"almond milk":     CategoryPantry,
		"chicken stock":   CategoryPantry,
		"chicken thighs":  CategoryMeat,
		"graham crackers": CategoryOther,
		"chickpeas":       CategoryPantry,
		"rolled oats":     CategoryPantry,
		"goat cheese":     CategoryDairy,
		"":                CategoryOther,
	}
	for name, want := range cases {
		assert.Equal(t, want, Categorize(name), name)
	}
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"2.49":       2.49,
		"$3 each":    3,
		"€1.20/kg":   1.2,
		" £0.99 ":    0.99,
		".5":         0.5,
		"free":       0,
		"":           0,
		"$":          0,
		"10.":        10,
		"3 for 2.00": 3,
	}
	for in, want := range cases {
		assert.InDelta(t, want, ParsePrice(in), 1e-9, in)
	}
}

func TestPriceTotal(t *testing.T) {
	items := []GroupedIngredient{
		{Price: "$1.50"},
		{Price: "2.25"},
		{Price: "ask at counter"},
		{},
	}
	assert.InDelta(t, 3.75, PriceTotal(items), 1e-9)
}

func TestExportText(t *testing.T) {
	items := []GroupedIngredient{
		{Name: "oats", Amount: 300, Unit: "g"},
		{Name: "Eggs", Amount: 2.5},
		{Name: "milk", Amount: 1.333333, Unit: "cup", ProductName: "Farm Milk", Price: "$1.50"},
		{Name: "honey", Amount: 0.1, Unit: "cup", Price: "4"},
	}

	want := "300 g oats\n" +
		"2.5 Eggs\n" +
		"1.33 cup milk (Farm Milk) - $1.50\n" +
		"0.1 cup honey - 4"
	assert.Equal(t, want, ExportText(items))
	assert.Equal(t, "", ExportText(nil))
}

func TestSessionAppliesFlags(t *testing.T) {
	s := NewSession()
	s.AddManual(ManualItem{Name: "Bread", Amount: 1})
	s.SetFlags("bread", Flags{Checked: true, Selected: true})

	list := s.Apply(Aggregate(nil, s.ManualItems))

	require.Len(t, list, 1)
	assert.True(t, list[0].Checked)
	assert.True(t, list[0].Selected)
	assert.Len(t, Selected(list), 1)

	s.SetFlags("bread", Flags{})
	assert.Empty(t, Selected(s.Apply(list)))
}
