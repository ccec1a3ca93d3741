package compat

import (
	"sort"

	"github.com/pageza/mealplanner/backend/internal/models"
)

// View filters the catalog down to admissible recipes and orders them by
// score, highest first. Equal scores keep catalog order. A nil profile
// returns the catalog untouched.
func View(catalog []*models.Recipe, profile *models.HealthProfile) []*models.Recipe {
	if profile == nil {
		return catalog
	}

	ranked := make([]Ranked, 0, len(catalog))
	for _, r := range catalog {
		if v := IsAdmissible(r, profile); v.Pass {
			ranked = append(ranked, Ranked{Recipe: r, Verdict: v, Score: Score(r, profile)})
		}
	}
	sortByScore(ranked)

	out := make([]*models.Recipe, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].Recipe
	}
	return out
}

// Ranked is a recipe together with why it was or was not admitted
type Ranked struct {
	Recipe  *models.Recipe `json:"recipe"`
	Verdict Verdict        `json:"verdict"`
	Score   float64        `json:"score"`
}

// Explain evaluates every recipe. Admissible recipes come first in View
// order, followed by the rejected ones in catalog order.
func Explain(catalog []*models.Recipe, profile *models.HealthProfile) []Ranked {
	admitted := make([]Ranked, 0, len(catalog))
	var rejected []Ranked
	for _, r := range catalog {
		entry := Ranked{Recipe: r, Verdict: IsAdmissible(r, profile)}
		if !entry.Verdict.Pass {
			rejected = append(rejected, entry)
			continue
		}
		entry.Score = Score(r, profile)
		admitted = append(admitted, entry)
	}
	if profile != nil {
		sortByScore(admitted)
	}
	return append(admitted, rejected...)
}

func sortByScore(ranked []Ranked) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
}
