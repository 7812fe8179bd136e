package catalog

import (
	"context"
	"errors"
	"testing"

	"chefy/domain"
	"chefy/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureService() CatalogService {
	meals := []entities.Meal{
		{ID: 10, Price: entities.NewMoney(10), Ingredients: []string{"A", "B"}},
		{ID: 20, Price: entities.NewMoney(20), Ingredients: []string{"C"}},
		{ID: 30, Price: entities.NewMoney(30), Ingredients: []string{"D"}},
	}
	content := map[int]map[string]entities.LocalizedMeal{
		10: {
			domain.LocaleEnglish: {Name: "Ten", Steps: []string{"one"}},
			domain.LocaleFrench:  {Name: "Dix", Steps: []string{"un"}},
		},
		20: {
			domain.LocaleEnglish: {Name: "Twenty", Steps: []string{"two"}},
		},
	}
	return NewCatalogService(NewCatalogRepositoryFrom(meals, content), domain.LocaleEnglish)
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(NewCatalogRepository(), domain.LocaleEnglish)

	meals := svc.List(ctx, domain.LocaleEnglish)
	require.Len(t, meals, 8)
	for i, m := range meals {
		assert.Equal(t, i+1, m.ID)
		assert.Len(t, m.Steps, 4, "meal %d", m.ID)
		assert.Len(t, m.CanonicalIngredients, 4, "meal %d", m.ID)
		assert.Equal(t, domain.CurrencyCode, m.Currency)
	}

	salmon, err := svc.MealByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entities.NewMoney(52), salmon.Price)
	assert.Equal(t, entities.Nutrition{Calories: 380, Protein: 35, Fat: 18, Carbs: 12}, salmon.Nutrition)
	assert.Equal(t, []string{"Salmon Fillet", "Herb Crust", "Lemon Butter", "Asparagus"}, salmon.Ingredients)

	for _, m := range meals {
		for _, locale := range domain.Locales {
			c := svc.Content(ctx, m.ID, locale)
			assert.Len(t, c.Steps, 4, "meal %d locale %s", m.ID, locale)
			assert.Len(t, c.Ingredients, 4, "meal %d locale %s", m.ID, locale)
		}
	}
}

func TestMealByID(t *testing.T) {
	ctx := context.Background()
	svc := fixtureService()

	_, err := svc.MealByID(ctx, 99)
	assert.True(t, errors.Is(err, domain.ErrMealNotFound))

	_, err = svc.MealByID(ctx, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidMealID))

	m, err := svc.MealByID(ctx, 10)
	require.NoError(t, err)
	m.Ingredients[0] = "mutated"

	again, _ := svc.MealByID(ctx, 10)
	assert.Equal(t, "A", again.Ingredients[0])
}

func TestContentFallback(t *testing.T) {
	ctx := context.Background()
	svc := fixtureService()

	tests := []struct {
		name   string
		id     int
		locale string
		want   string
	}{
		{"requested locale", 10, domain.LocaleFrench, "Dix"},
		{"default locale for same meal", 20, domain.LocaleFrench, "Twenty"},
		{"first meal in requested locale", 30, domain.LocaleFrench, "Dix"},
		{"first meal in default locale", 30, domain.LocaleArabic, "Ten"},
		{"unknown meal", 99, domain.LocaleEnglish, "Ten"},
		{"unsupported locale", 20, "de", "Twenty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Content(ctx, tt.id, tt.locale).Name)
		})
	}
}

func TestContentEmptyCatalog(t *testing.T) {
	svc := NewCatalogService(NewCatalogRepositoryFrom(nil, nil), domain.LocaleEnglish)
	assert.Equal(t, entities.LocalizedMeal{}, svc.Content(context.Background(), 1, domain.LocaleEnglish))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(NewCatalogRepository(), domain.LocaleEnglish)

	res := svc.Search(ctx, "salmon", domain.LocaleEnglish)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].ID)

	res = svc.Search(ctx, "  BEEF ", domain.LocaleEnglish)
	ids := make([]int, 0, len(res))
	for _, m := range res {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{4, 8}, ids)

	res = svc.Search(ctx, "saumon", domain.LocaleFrench)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].ID)

	assert.Len(t, svc.Search(ctx, "", domain.LocaleEnglish), 8)
	assert.Empty(t, svc.Search(ctx, "pizza", domain.LocaleEnglish))
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(NewCatalogRepository(), domain.LocaleEnglish)

	res, err := svc.Detail(ctx, 5, domain.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleArabic, res.Locale)
	assert.True(t, res.RTL)
	assert.Contains(t, res.CanonicalIngredients, "Feta Cream")

	res, err = svc.Detail(ctx, 5, "")
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleEnglish, res.Locale)
	assert.Equal(t, "Mediterranean Lamb Chops", res.Name)

	_, err = svc.Detail(ctx, 42, domain.LocaleEnglish)
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}
