package shopping

import "strings"

// Category is the aisle an ingredient is listed under
type Category string

const (
	CategoryProduce Category = "produce"
	CategoryMeat    Category = "meat"
	CategoryDairy   Category = "dairy"
	CategoryPantry  Category = "pantry"
	CategoryOther   Category = "other"
)

// Categories lists every category in display order
var Categories = []Category{CategoryProduce, CategoryMeat, CategoryDairy, CategoryPantry, CategoryOther}

func (c Category) order() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

var categoryKeywords = map[Category][]string{
	CategoryProduce: {
		"apple", "avocado", "banana", "basil", "bell pepper", "berries", "berry", "broccoli",
		"cabbage", "carrot", "cauliflower", "celery", "cilantro", "cucumber", "eggplant",
		"fruit", "garlic", "ginger", "grape", "herb", "kale", "lemon", "lettuce", "lime",
		"mango", "mint", "mushroom", "onion", "orange", "parsley", "peas", "potato",
		"spinach", "squash", "tomato", "vegetable", "zucchini",
	},
	CategoryMeat: {
		"bacon", "beef", "chicken", "cod", "fish", "ham", "lamb", "meat", "mince", "pork",
		"prawn", "salmon", "sausage", "shrimp", "steak", "tuna", "turkey",
	},
	CategoryDairy: {
		"butter", "cheese", "cream", "egg", "feta", "milk", "mozzarella", "parmesan",
		"yoghurt", "yogurt",
	},
	CategoryPantry: {
		"almond milk", "baking powder", "beans", "black pepper", "bread", "broth",
		"chicken stock", "chickpea", "cinnamon", "coconut milk", "cumin", "flour", "honey",
		"lentil", "noodle", "oat", "oil", "paprika", "pasta", "peanut butter", "quinoa",
		"rice", "salt", "sauce", "seeds", "soy sauce", "spice", "stock", "sugar",
		"tomato paste", "vegetable stock", "vinegar",
	},
}

// Categorize picks the category whose longest keyword starts a word of the
// ingredient name. Ties go to the earlier category.
func Categorize(name string) Category {
	name = strings.ToLower(name)
	best, bestLen := CategoryOther, 0
	for _, cat := range Categories {
		for _, kw := range categoryKeywords[cat] {
			if len(kw) > bestLen && containsWord(name, kw) {
				best, bestLen = cat, len(kw)
			}
		}
	}
	return best
}

// containsWord reports whether kw occurs in s at the start of a word
func containsWord(s, kw string) bool {
	for offset := 0; offset <= len(s)-len(kw); {
		i := strings.Index(s[offset:], kw)
		if i < 0 {
			return false
		}
		pos := offset + i
		if pos == 0 || !isLetter(s[pos-1]) {
			return true
		}
		offset = pos + 1
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
