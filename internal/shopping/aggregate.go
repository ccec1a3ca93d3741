// Package shopping consolidates meal plan ingredients and manual entries
// into a categorized shopping list.
package shopping

import (
	"sort"

	"github.com/pageza/mealplanner/backend/internal/compat"
	"github.com/pageza/mealplanner/backend/internal/models"
)

// Key is a normalized ingredient name
type Key string

// KeyOf returns the merge key for an ingredient name
func KeyOf(name string) Key {
	return Key(compat.Normalize(name))
}

// GroupedIngredient is one consolidated shopping list line
type GroupedIngredient struct {
	Key         Key      `json:"key"`
	Name        string   `json:"name"`
	Amount      float64  `json:"amount"`
	Unit        string   `json:"unit"`
	Category    Category `json:"category"`
	Checked     bool     `json:"checked"`
	Selected    bool     `json:"selected"`
	ProductName string   `json:"productName,omitempty"`
	Price       string   `json:"price,omitempty"`
	Promoted    bool     `json:"promoted,omitempty"`
}

// ManualItem is a line the user typed in directly
type ManualItem struct {
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Unit        string  `json:"unit"`
	ProductName string  `json:"productName,omitempty"`
	Price       string  `json:"price,omitempty"`
	Promoted    bool    `json:"promoted,omitempty"`
}

// Entry is a single ingredient requirement fed into the accumulator
type Entry struct {
	Name        string
	Amount      float64
	Unit        string
	ProductName string
	Price       string
	Promoted    bool
}

// Accumulator merges entries by normalized name. The first entry for a key
// fixes its descriptive fields and category; later entries only add to the
// amount.
type Accumulator struct {
	items map[Key]*GroupedIngredient
	order []Key
}

// NewAccumulator returns an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{items: make(map[Key]*GroupedIngredient)}
}

// Merge folds one entry into the accumulator. Entries with a blank name are dropped.
func (a *Accumulator) Merge(e Entry) {
	key := KeyOf(e.Name)
	if key == "" {
		return
	}
	if existing, ok := a.items[key]; ok {
		existing.Amount += e.Amount
		return
	}
	a.items[key] = &GroupedIngredient{
		Key:         key,
		Name:        e.Name,
		Amount:      e.Amount,
		Unit:        e.Unit,
		Category:    Categorize(string(key)),
		ProductName: e.ProductName,
		Price:       e.Price,
		Promoted:    e.Promoted,
	}
	a.order = append(a.order, key)
}

// Items returns the merged lines in first-insertion order
func (a *Accumulator) Items() []GroupedIngredient {
	out := make([]GroupedIngredient, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, *a.items[k])
	}
	return out
}

// ScaledEntries converts a planned meal into entries scaled by
// item servings / recipe servings. Recipes are validated to have positive
// servings when they are loaded into the catalog.
func ScaledEntries(item *models.MealPlanItem) []Entry {
	recipe := &item.Recipe
	if recipe.Servings <= 0 {
		return nil
	}
	ratio := float64(item.Servings) / float64(recipe.Servings)
	entries := make([]Entry, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		entries = append(entries, Entry{
			Name:        ing.Name,
			Amount:      ing.Amount * ratio,
			Unit:        ing.Unit,
			ProductName: ing.ProductName,
			Price:       ing.Price,
			Promoted:    ing.Promoted,
		})
	}
	return entries
}

// Aggregate builds the consolidated list from planned meals followed by
// manual items, ordered by category, promoted lines first within a category.
func Aggregate(items []models.MealPlanItem, manual []ManualItem) []GroupedIngredient {
	acc := NewAccumulator()
	for i := range items {
		for _, e := range ScaledEntries(&items[i]) {
			acc.Merge(e)
		}
	}
	for _, m := range manual {
		acc.Merge(Entry{
			Name:        m.Name,
			Amount:      m.Amount,
			Unit:        m.Unit,
			ProductName: m.ProductName,
			Price:       m.Price,
			Promoted:    m.Promoted,
		})
	}

	out := acc.Items()
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].Category.order(), out[j].Category.order()
		if ci != cj {
			return ci < cj
		}
		return out[i].Promoted && !out[j].Promoted
	})
	return out
}

// Group is one category section of the list
type Group struct {
	Category Category            `json:"category"`
	Items    []GroupedIngredient `json:"items"`
}

// GroupByCategory splits an aggregated list into display sections.
// Empty categories are omitted.
func GroupByCategory(items []GroupedIngredient) []Group {
	byCat := make(map[Category][]GroupedIngredient)
	for _, it := range items {
		byCat[it.Category] = append(byCat[it.Category], it)
	}
	groups := make([]Group, 0, len(byCat))
	for _, cat := range Categories {
		if len(byCat[cat]) > 0 {
			groups = append(groups, Group{Category: cat, Items: byCat[cat]})
		}
	}
	return groups
}

// Selected returns the lines flagged for cart export
func Selected(items []GroupedIngredient) []GroupedIngredient {
	var out []GroupedIngredient
	for _, it := range items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}
