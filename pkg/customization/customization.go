// Package customization adjusts a meal's nutrition for a chosen serving count
// and a set of removed ingredients. Everything here is pure.
package customization

import (
	"math"

	"chefy/entities"
)

func ClampServings(n int) int {
	if n < entities.MinServings {
		return entities.MinServings
	}
	if n > entities.MaxServings {
		return entities.MaxServings
	}
	return n
}

// Sanitize clamps servings and keeps only removed names that belong to
// ingredients, deduplicated and in ingredient-list order.
func Sanitize(c entities.Customization, ingredients []string) entities.Customization {
	removed := make(map[string]struct{}, len(c.RemovedIngredients))
	for _, name := range c.RemovedIngredients {
		removed[name] = struct{}{}
	}

	out := entities.Customization{
		Servings:           ClampServings(c.Servings),
		RemovedIngredients: []string{},
	}
	for _, name := range ingredients {
		if _, ok := removed[name]; ok {
			out.RemovedIngredients = append(out.RemovedIngredients, name)
			delete(removed, name)
		}
	}
	return out
}

// AdjustedNutrition scales base by servings/BaseServings and by the share of
// ingredients still present. Servings are clamped first. Removed names outside
// ingredients are ignored.
func AdjustedNutrition(base entities.Nutrition, ingredients []string, c entities.Customization) entities.Nutrition {
	servingFactor := float64(ClampServings(c.Servings)) / float64(entities.BaseServings)
	ingredientFactor := 1.0
	if n := len(ingredients); n > 0 {
		ingredientFactor = float64(n-countRemoved(ingredients, c.RemovedIngredients)) / float64(n)
	}
	factor := servingFactor * ingredientFactor

	return entities.Nutrition{
		Calories: scale(base.Calories, factor),
		Protein:  scale(base.Protein, factor),
		Fat:      scale(base.Fat, factor),
		Carbs:    scale(base.Carbs, factor),
	}
}

func AdjustedNutritionFor(meal entities.Meal, c entities.Customization) entities.Nutrition {
	return AdjustedNutrition(meal.Nutrition, meal.Ingredients, c)
}

// Toggle flips ingredient in the removed set and returns a new value that
// shares no backing array with c.
func Toggle(c entities.Customization, ingredient string) entities.Customization {
	out := entities.Customization{
		Servings:           c.Servings,
		RemovedIngredients: make([]string, 0, len(c.RemovedIngredients)+1),
	}
	found := false
	for _, name := range c.RemovedIngredients {
		if name == ingredient {
			found = true
			continue
		}
		out.RemovedIngredients = append(out.RemovedIngredients, name)
	}
	if !found {
		out.RemovedIngredients = append(out.RemovedIngredients, ingredient)
	}
	return out
}

func IsCustomized(c entities.Customization) bool {
	return c.Servings != entities.BaseServings || len(c.RemovedIngredients) > 0
}

// countRemoved counts ingredients present in removed, each list entry once.
func countRemoved(ingredients, removed []string) int {
	if len(removed) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(removed))
	for _, name := range removed {
		set[name] = struct{}{}
	}
	n := 0
	for _, name := range ingredients {
		if _, ok := set[name]; ok {
			n++
		}
	}
	return n
}

func scale(v int, factor float64) int {
	return int(math.Round(float64(v) * factor))
}
