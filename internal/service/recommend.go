package service

import (
	"sort"

	"campus-cafeteria/internal/domain"

	"github.com/shopspring/decimal"
)

// Recommendations is the ranked view of a menu catalog for one dietary
// profile. The chat fallback renders text from it and the collaborator
// request carries its head.
type Recommendations struct {
	// LowCalorie holds menus with known calories, ascending, capped by the
	// user's daily calorie goal when one is recorded.
	LowCalorie []domain.Recommendation
	// HighProtein holds menus with known protein, descending, above the
	// user's minimum protein goal when one is recorded.
	HighProtein  []domain.Recommendation
	CalorieLimit *int
	ProteinFloor *decimal.Decimal
}

func Recommend(menus []domain.Menu, profile domain.DietaryProfile) Recommendations {
	var rec Recommendations
	if goal, ok := profile.NutritionGoal.Get(); ok {
		rec.CalorieLimit = goal.DailyCalorieGoal
		rec.ProteinFloor = goal.MinProteinGoal
	}

	for _, m := range menus {
		if m.Nutrition == nil {
			continue
		}
		if c := m.Nutrition.Calories; c != nil && (rec.CalorieLimit == nil || *c <= *rec.CalorieLimit) {
			rec.LowCalorie = append(rec.LowCalorie, domain.Recommendation{
				Kind:     domain.RecommendLowCalorie,
				MenuID:   m.ID,
				MenuName: m.Name,
				Calories: c,
			})
		}
		if p := m.Nutrition.Protein; p != nil && (rec.ProteinFloor == nil || p.GreaterThanOrEqual(*rec.ProteinFloor)) {
			rec.HighProtein = append(rec.HighProtein, domain.Recommendation{
				Kind:     domain.RecommendHighProtein,
				MenuID:   m.ID,
				MenuName: m.Name,
				Protein:  p,
			})
		}
	}

	sort.SliceStable(rec.LowCalorie, func(i, j int) bool {
		return *rec.LowCalorie[i].Calories < *rec.LowCalorie[j].Calories
	})
	sort.SliceStable(rec.HighProtein, func(i, j int) bool {
		return rec.HighProtein[i].Protein.GreaterThan(*rec.HighProtein[j].Protein)
	})
	return rec
}

// Top returns at most n picks of each kind.
func (r Recommendations) Top(n int) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, 2*n)
	out = append(out, head(r.LowCalorie, n)...)
	out = append(out, head(r.HighProtein, n)...)
	return out
}

func head(recs []domain.Recommendation, n int) []domain.Recommendation {
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}

// AllergenConflicts lists the user's allergens present in a menu.
func AllergenConflicts(menu domain.Menu, allergies []string) []string {
	present := make(map[string]struct{}, len(menu.AllergyIngredients))
	for _, a := range menu.AllergyIngredients {
		present[a] = struct{}{}
	}
	var conflicts []string
	for _, a := range allergies {
		if _, ok := present[a]; ok {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts
}
