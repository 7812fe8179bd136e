package catalog

import (
	"context"
	"fmt"

	"chefy/domain"
	"chefy/entities"
)

type (
	CatalogRepository interface {
		GetMeals(ctx context.Context) []entities.Meal
		GetMealByID(ctx context.Context, id int) (entities.Meal, error)
		GetContent(ctx context.Context, id int, locale string) (entities.LocalizedMeal, bool)
	}

	catalogRepository struct {
		meals   []entities.Meal
		content map[int]map[string]entities.LocalizedMeal
	}
)

// NewCatalogRepository serves the built-in meal catalog.
func NewCatalogRepository() CatalogRepository {
	return NewCatalogRepositoryFrom(seedMeals(), seedContent())
}

// NewCatalogRepositoryFrom serves an arbitrary catalog. Meals keep the
// order given; content is keyed by meal id then locale.
func NewCatalogRepositoryFrom(meals []entities.Meal, content map[int]map[string]entities.LocalizedMeal) CatalogRepository {
	r := &catalogRepository{
		meals:   make([]entities.Meal, 0, len(meals)),
		content: make(map[int]map[string]entities.LocalizedMeal, len(content)),
	}
	for _, m := range meals {
		r.meals = append(r.meals, cloneMeal(m))
	}
	for id, byLocale := range content {
		inner := make(map[string]entities.LocalizedMeal, len(byLocale))
		for locale, lm := range byLocale {
			inner[locale] = cloneContent(lm)
		}
		r.content[id] = inner
	}
	return r
}

func (r *catalogRepository) GetMeals(ctx context.Context) []entities.Meal {
	meals := make([]entities.Meal, 0, len(r.meals))
	for _, m := range r.meals {
		meals = append(meals, cloneMeal(m))
	}
	return meals
}

func (r *catalogRepository) GetMealByID(ctx context.Context, id int) (entities.Meal, error) {
	for _, m := range r.meals {
		if m.ID == id {
			return cloneMeal(m), nil
		}
	}
	return entities.Meal{}, fmt.Errorf("meal %d: %w", id, domain.ErrMealNotFound)
}

func (r *catalogRepository) GetContent(ctx context.Context, id int, locale string) (entities.LocalizedMeal, bool) {
	byLocale, ok := r.content[id]
	if !ok {
		return entities.LocalizedMeal{}, false
	}
	lm, ok := byLocale[locale]
	if !ok {
		return entities.LocalizedMeal{}, false
	}
	return cloneContent(lm), true
}

func cloneMeal(m entities.Meal) entities.Meal {
	m.Ingredients = append([]string(nil), m.Ingredients...)
	return m
}

func cloneContent(lm entities.LocalizedMeal) entities.LocalizedMeal {
	lm.Ingredients = append([]string(nil), lm.Ingredients...)
	lm.Steps = append([]string(nil), lm.Steps...)
	return lm
}
