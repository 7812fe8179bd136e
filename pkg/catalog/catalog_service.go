package catalog

import (
	"context"
	"strings"

	"chefy/domain"
	"chefy/entities"
)

type (
	CatalogService interface {
		MealByID(ctx context.Context, id int) (entities.Meal, error)
		Content(ctx context.Context, id int, locale string) entities.LocalizedMeal
		List(ctx context.Context, locale string) []domain.MealResponse
		Search(ctx context.Context, query, locale string) []domain.MealResponse
		Detail(ctx context.Context, id int, locale string) (domain.MealResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		defaultLocale     string
	}
)

func NewCatalogService(catalogRepository CatalogRepository, defaultLocale string) CatalogService {
	if !domain.IsSupportedLocale(defaultLocale) {
		defaultLocale = domain.DefaultLocale
	}
	return &catalogService{
		catalogRepository: catalogRepository,
		defaultLocale:     defaultLocale,
	}
}

func (s *catalogService) MealByID(ctx context.Context, id int) (entities.Meal, error) {
	if id <= 0 {
		return entities.Meal{}, domain.ErrInvalidMealID
	}
	return s.catalogRepository.GetMealByID(ctx, id)
}

// Content never fails. When the meal has no text in the requested locale it
// falls back to the default locale, then to the first catalog meal.
func (s *catalogService) Content(ctx context.Context, id int, locale string) entities.LocalizedMeal {
	locale = s.resolve(locale)
	if lm, ok := s.catalogRepository.GetContent(ctx, id, locale); ok {
		return lm
	}
	if lm, ok := s.catalogRepository.GetContent(ctx, id, s.defaultLocale); ok {
		return lm
	}

	meals := s.catalogRepository.GetMeals(ctx)
	if len(meals) == 0 {
		return entities.LocalizedMeal{}
	}
	first := meals[0].ID
	if lm, ok := s.catalogRepository.GetContent(ctx, first, locale); ok {
		return lm
	}
	lm, _ := s.catalogRepository.GetContent(ctx, first, s.defaultLocale)
	return lm
}

func (s *catalogService) List(ctx context.Context, locale string) []domain.MealResponse {
	return s.Search(ctx, "", locale)
}

func (s *catalogService) Search(ctx context.Context, query, locale string) []domain.MealResponse {
	locale = s.resolve(locale)
	query = strings.ToLower(strings.TrimSpace(query))

	meals := s.catalogRepository.GetMeals(ctx)
	res := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		content := s.Content(ctx, m.ID, locale)
		if query != "" && !strings.Contains(strings.ToLower(content.Name), query) {
			continue
		}
		res = append(res, toMealResponse(m, content, locale))
	}
	return res
}

func (s *catalogService) Detail(ctx context.Context, id int, locale string) (domain.MealResponse, error) {
	meal, err := s.MealByID(ctx, id)
	if err != nil {
		return domain.MealResponse{}, err
	}
	locale = s.resolve(locale)
	return toMealResponse(meal, s.Content(ctx, id, locale), locale), nil
}

func (s *catalogService) resolve(locale string) string {
	if domain.IsSupportedLocale(locale) {
		return locale
	}
	return s.defaultLocale
}

func toMealResponse(m entities.Meal, content entities.LocalizedMeal, locale string) domain.MealResponse {
	return domain.MealResponse{
		ID:                   m.ID,
		Name:                 content.Name,
		Time:                 content.Time,
		Tags:                 content.Tags,
		Price:                m.Price,
		Currency:             domain.CurrencyCode,
		Nutrition:            m.Nutrition,
		Ingredients:          content.Ingredients,
		CanonicalIngredients: m.Ingredients,
		Steps:                content.Steps,
		Images:               m.Images,
		Locale:               locale,
		RTL:                  domain.IsRTL(locale),
	}
}
