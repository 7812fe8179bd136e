package handlers

import (
	"context"
	"errors"

	"chefy/domain"
	"chefy/entities"
	"chefy/pkg/cook"
	"chefy/pkg/customization"
	"chefy/pkg/delivery"
	"chefy/pkg/session"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMealNotFound), errors.Is(err, domain.ErrBoxEntryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotCooking), errors.Is(err, domain.ErrNoMealSelected):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidMealID), errors.Is(err, domain.ErrInvalidDay), errors.Is(err, domain.ErrInvalidPreference):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// entryKey reads the :mealId and :date route params that identify a box entry.
func entryKey(c *fiber.Ctx) (int, entities.Day, error) {
	mealID, err := c.ParamsInt("mealId")
	if err != nil || mealID <= 0 {
		return 0, entities.Day{}, domain.ErrInvalidMealID
	}
	date, err := entities.ParseDay(c.Params("date"))
	if err != nil {
		return 0, entities.Day{}, domain.ErrInvalidDay
	}
	return mealID, date, nil
}

func toCustomization(req domain.CustomizationRequest) entities.Customization {
	c := entities.Customization{
		Servings:           entities.BaseServings,
		RemovedIngredients: req.RemovedIngredients,
	}
	if req.Servings != nil {
		c.Servings = *req.Servings
	}
	return c
}

func toBoxEntryResponse(ctx context.Context, store *session.Store, e entities.BoxEntry, locale string) domain.BoxEntryResponse {
	content := store.Catalog().Content(ctx, e.Meal.ID, locale)
	return domain.BoxEntryResponse{
		ID:            e.ID,
		MealID:        e.Meal.ID,
		Name:          content.Name,
		DeliveryDate:  e.DeliveryDate,
		DateLabel:     delivery.DayLabel(e.DeliveryDate, locale),
		Price:         e.Meal.Price,
		Currency:      domain.CurrencyCode,
		Customization: e.Customization,
		Customized:    customization.IsCustomized(e.Customization),
		BaseNutrition: e.Meal.Nutrition,
		Nutrition:     store.AdjustedNutrition(e.Meal, e.Customization),
		Images:        e.Meal.Images,
	}
}

func toCookStateResponse(ctx context.Context, store *session.Store, snap cook.Snapshot, finished bool, locale string) domain.CookStateResponse {
	res := domain.CookStateResponse{
		State:         string(snap.State),
		Step:          snap.Step,
		StepCount:     snap.StepCount,
		TimeRemaining: snap.TimeRemaining,
		TimeLabel:     snap.TimeLabel(),
		Running:       snap.Running,
		Progress:      snap.Progress(),
		Finished:      finished,
	}
	if snap.State == cook.Cooking {
		date := snap.DeliveryDate
		res.SessionID = snap.SessionID.String()
		res.MealID = snap.MealID
		res.DeliveryDate = &date
		res.StepText = store.StepText(ctx, snap, locale)
	}
	return res
}
